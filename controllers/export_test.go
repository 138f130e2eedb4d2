package controllers

// AuthResponse exposes the unexported authResponse type to the external
// controllers_test package.
type AuthResponse = authResponse
