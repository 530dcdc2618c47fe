package handler

import (
	"fmt"
	"strconv"

	"delegated-treasury/internal/core/domain"
	"delegated-treasury/pkg/apperror"
	"delegated-treasury/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

func uint32Param(c *gin.Context, name string) (uint32, error) {
	n, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, apperror.Validation(fmt.Sprintf("%s must be an unsigned 32-bit integer", name))
	}
	return uint32(n), nil
}

func identityParam(c *gin.Context, name string) (domain.Identity, error) {
	id, err := domain.ParseIdentity(c.Param(name))
	if err != nil {
		return "", apperror.ErrInvalidIdentity()
	}
	return id, nil
}

// pageQuery reads offset-style paging parameters, clamping limit to maxPageLimit.
func pageQuery(c *gin.Context, offsetKey string) (uint32, uint32, error) {
	offset, err := strconv.ParseUint(c.DefaultQuery(offsetKey, "0"), 10, 32)
	if err != nil {
		return 0, 0, apperror.Validation(fmt.Sprintf("%s must be an unsigned 32-bit integer", offsetKey))
	}
	limit, err := strconv.ParseUint(c.DefaultQuery("limit", strconv.Itoa(defaultPageLimit)), 10, 32)
	if err != nil {
		return 0, 0, apperror.Validation("limit must be an unsigned 32-bit integer")
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return uint32(offset), uint32(limit), nil
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	return true
}
