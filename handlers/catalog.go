package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogRepo "shutterdesk/database/repository/catalog"
	"shutterdesk/models"
	"shutterdesk/utils"
)

// CatalogHandler exposes the package and add-on catalog.
type CatalogHandler struct {
	Repo catalogRepo.CatalogRepository
}

func NewCatalogHandler(repo catalogRepo.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{Repo: repo}
}

// ListPackages returns all catalog packages.
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	packages, err := h.Repo.ListPackages(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list packages", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"packages": packages})
}

// ListAddOns returns all catalog add-ons.
func (h *CatalogHandler) ListAddOns(c *gin.Context) {
	addons, err := h.Repo.ListAddOns(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list add-ons", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"addons": addons})
}

// UpsertPackage creates or replaces a catalog package.
func (h *CatalogHandler) UpsertPackage(c *gin.Context) {
	var pkg models.Package
	if err := c.ShouldBindJSON(&pkg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	pkg.ID = c.Param("id")
	if err := h.Repo.UpsertPackage(c.Request.Context(), pkg); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save package", err.Error())
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// UpsertAddOn creates or replaces a catalog add-on.
func (h *CatalogHandler) UpsertAddOn(c *gin.Context) {
	var addon models.AddOn
	if err := c.ShouldBindJSON(&addon); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	addon.ID = c.Param("id")
	if err := h.Repo.UpsertAddOn(c.Request.Context(), addon); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save add-on", err.Error())
		return
	}
	c.JSON(http.StatusOK, addon)
}
