package errs

// BusinessError is a named business rule violation. It carries a stable Code for
// adapters and unwraps to its Kind, one of the sentinel kinds of this package.
//
// Business errors are declared once as package-level sentinels and compared with
// errors.Is. Call sites add context by wrapping:
//
//	var ErrDishNotFound = errs.NewBusinessError(errs.ErrObjectNotFound, "DISH_NOT_FOUND", "dish not found")
//
//	return fmt.Errorf("%w: %s", ErrDishNotFound, dishID)
type BusinessError struct {
	Kind    error
	Code    string
	Message string
}

func NewBusinessError(kind error, code, message string) *BusinessError {
	return &BusinessError{Kind: kind, Code: code, Message: message}
}

func (e *BusinessError) Error() string {
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Kind
}
