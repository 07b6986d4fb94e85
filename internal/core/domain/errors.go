package domain

import "errors"

var ErrKeyNotFound = errors.New("key not found")
var ErrCattleFieldsMissing = errors.New("name and breed required")
var ErrScanFieldsMissing = errors.New("cattle ID and mode required")
var ErrCattleNotFound = errors.New("cattle not found")
var ErrAlertNotFound = errors.New("alert not found")
var ErrMissingCredentials = errors.New("phone and OTP required")
var ErrInvalidOTP = errors.New("invalid OTP")
var ErrTooManyAttempts = errors.New("too many sign-in attempts")
var ErrInvalidToken = errors.New("invalid token")
var ErrTokenExpired = errors.New("token expired")
