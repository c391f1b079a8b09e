package notifier

import (
	"context"
	"fmt"

	"github.com/gen2brain/beeep"
)

const alertTitle = "Server open"

// Desktop raises a system notification with the endpoint name.
type Desktop struct {
	alert func(title, message string) error
}

func NewDesktop() *Desktop {
	return &Desktop{
		alert: func(title, message string) error {
			return beeep.Alert(title, message, "")
		},
	}
}

func (d *Desktop) Notify(_ context.Context, name string) error {
	if err := d.alert(alertTitle, alertMessage(name)); err != nil {
		return fmt.Errorf("failed to raise desktop alert: %w", err)
	}

	return nil
}

func alertMessage(name string) string {
	return name + " is open!"
}
