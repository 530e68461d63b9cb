package batch

import "errors"

var (
	// ErrInvalidHeader is returned when the CSV header is not "id,name,price".
	ErrInvalidHeader = errors.New("batch: invalid csv header")

	// ErrBatchFailed wraps I/O and encoding failures during conversion.
	ErrBatchFailed = errors.New("batch: conversion failed")
)
