// Package domain defines the typed tree a parsed Odoo domain reduces to,
// plus the error taxonomy shared by the parser and its callers.
package domain
