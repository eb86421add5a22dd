package validate

import "context"

// Func wraps a validation function into a type that implements the HasValidate interface.
// If the provided function is nil, Validate() will return nil (validation succeeds).
//
// Example:
//
//	checkStride := validate.Func(func() error {
//	    if layout.Stride() == 0 {
//	        return errors.New("empty layout")
//	    }
//	    return nil
//	})
//
//	if err := validate.Validate(ctx, checkStride); err != nil {
//	    return err
//	}
func Func(f func() error) HasValidate {
	return &validateFunc{
		validate: f,
	}
}

// FuncWithContext wraps a context-aware validation function into a type that implements
// the HasValidateWithContext interface. A nil function always validates.
func FuncWithContext(f func(ctx context.Context) error) HasValidateWithContext {
	return &validateFuncWithContext{
		validate: f,
	}
}

type validateFunc struct {
	validate func() error
}

var _ HasValidate = (*validateFunc)(nil)

func (v *validateFunc) Validate() error {
	if v.validate != nil {
		return v.validate()
	}

	return nil
}

type validateFuncWithContext struct {
	validate func(ctx context.Context) error
}

var _ HasValidateWithContext = (*validateFuncWithContext)(nil)

func (v *validateFuncWithContext) Validate(ctx context.Context) error {
	if v.validate != nil {
		return v.validate(ctx)
	}

	return nil
}
