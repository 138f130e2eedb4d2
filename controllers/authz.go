package controllers

import (
	"net/http"
	"strconv"

	"marketplace-backend/services"
	"marketplace-backend/utils"

	"github.com/gin-gonic/gin"
)

const (
	msgNotVerified = "Vendor account not verified. Please wait for admin approval before modifying listings."
	msgWrongType   = "Your vendor account type cannot manage this kind of listing."
	msgNoProfile   = "Vendor profile not found. Complete vendor registration first."
)

// authorizeOwnership walks the ownership ladder and writes the error
// response itself when access is denied. Ownership failures answer 404 so
// non-owners cannot probe which ids exist; verification and type failures
// answer 403 because ownership already confirmed existence.
func authorizeOwnership(c *gin.Context, res services.Ownership, requireVerified bool, notFoundMsg string) bool {
	if !res.Owner {
		utils.JSONError(c, http.StatusNotFound, notFoundMsg)
		return false
	}
	if requireVerified && !res.Verified {
		utils.JSONError(c, http.StatusForbidden, msgNotVerified)
		return false
	}
	if !res.CorrectType {
		utils.JSONError(c, http.StatusForbidden, msgWrongType)
		return false
	}
	return true
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid id parameter")
		return 0, false
	}
	return uint(id), true
}
