package handler

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/service"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the "rfid" and "wmsdate" tags to gin's validator.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		if err := v.RegisterValidation("rfid", validRFID); err != nil {
			registerErr = err
			return
		}
		registerErr = v.RegisterValidation("wmsdate", validDate)
	})
	return registerErr
}

func validRFID(fl validator.FieldLevel) bool {
	return service.ValidRFID(fl.Field().String())
}

func validDate(fl validator.FieldLevel) bool {
	_, err := service.ParseDate(fl.Field().String())
	return err == nil
}
