package brancherrors

import (
	"net/http"

	"github.com/Haseebinvader/SalaryManagement/internal/shared/apperror"
)

var (
	ErrBranchNotFound = apperror.New(
		apperror.CodeNotFound,
		"Branch not found",
		http.StatusNotFound,
	)
	ErrBranchNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Branch name is required and must be a non-empty string",
		http.StatusBadRequest,
	)
	ErrBranchNameAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Branch with this name already exists",
		http.StatusConflict,
	)
)
