// api/controller/esignature_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/etmf/api/model"
	"github.com/dev-mohitbeniwal/etmf/api/service"
	"github.com/dev-mohitbeniwal/etmf/api/util"
)

type ESignatureController struct {
	eSignatureService service.IESignatureService
}

func NewESignatureController(eSignatureService service.IESignatureService) *ESignatureController {
	return &ESignatureController{
		eSignatureService: eSignatureService,
	}
}

type signRequest struct {
	SignatureData string `json:"signatureData"`
}

type expiryRequest struct {
	ExpiresAt string `json:"expiresAt"`
}

// RegisterRoutes registers the API routes for electronic signatures
func (ec *ESignatureController) RegisterRoutes(r *gin.RouterGroup) {
	signatures := r.Group("/esignatures")
	{
		signatures.POST("", ec.CreateESignature)
		signatures.GET("/:id", ec.GetESignature)
		signatures.POST("/:id/sign", ec.Sign)
		signatures.POST("/:id/revoke", ec.Revoke)
		signatures.POST("/:id/expiry", ec.SetExpiry)
	}
	r.GET("/documents/:id/esignatures", ec.ListByDocument)
}

func (ec *ESignatureController) CreateESignature(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var sig model.ESignature
	if !bindJSON(c, &sig) {
		return
	}
	created, err := ec.eSignatureService.Create(c, sig, actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (ec *ESignatureController) GetESignature(c *gin.Context) {
	sig, err := ec.eSignatureService.Get(c, c.Param("id"))
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sig)
}

func (ec *ESignatureController) ListByDocument(c *gin.Context) {
	sigs, err := ec.eSignatureService.ListByDocument(c, c.Param("id"))
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sigs)
}

func (ec *ESignatureController) Sign(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req signRequest
	if !bindJSON(c, &req) {
		return
	}
	sig, err := ec.eSignatureService.Sign(c, c.Param("id"), actor, req.SignatureData)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sig)
}

func (ec *ESignatureController) Revoke(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	sig, err := ec.eSignatureService.Revoke(c, c.Param("id"), actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sig)
}

func (ec *ESignatureController) SetExpiry(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req expiryRequest
	if !bindJSON(c, &req) {
		return
	}
	expiresAt, ok := parseDate(c, "expiresAt", req.ExpiresAt)
	if !ok {
		return
	}
	sig, err := ec.eSignatureService.SetExpiry(c, c.Param("id"), expiresAt, actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sig)
}
