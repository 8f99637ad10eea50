// Package domain holds what every record package shares: the sentinel
// errors, the field-level ValidationError and the reversible Action.
// Records live in sub-packages (staff, mentee, invoice, receipt, inventory,
// document, user); validate, status and catalog are the validation,
// classification and constant layers they build on.
package domain
