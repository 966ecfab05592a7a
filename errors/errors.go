package errors

import "fmt"

var (
	ErrDataLoad      = fmt.Errorf("training data could not be loaded")
	ErrInvalidRecord = fmt.Errorf("invalid training record")
	ErrModelLoad     = fmt.Errorf("trained model could not be loaded")
	ErrTraining      = fmt.Errorf("no usable training examples")
	ErrProcessing    = fmt.Errorf("message processing failed")
	ErrPersistence   = fmt.Errorf("trained model could not be saved")
	ErrEmptyWords    = fmt.Errorf("no words have been found")
	ErrWorkerPanic   = fmt.Errorf("turn panic")
	ErrSessionClosed = fmt.Errorf("session is closed")
)
