// internal/handlers/common.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aryals/dealer-backend/internal/utils"
)

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid id parameter")
		return 0, false
	}
	return uint(id), true
}

// validationMessage flattens a validator error into the single descriptive
// message the error contract uses.
func validationMessage(err error) string {
	if errs := utils.GetValidationErrors(err); len(errs) > 0 {
		return errs[0].Message
	}
	return err.Error()
}
