package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrCedulaExists     = errors.New("cedula already registered")
	ErrNFCTagExists     = errors.New("NFC tag already assigned to another employee")
	ErrEmployeeInactive = errors.New("employee is inactive")
)
