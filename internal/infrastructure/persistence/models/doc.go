// Package models contains the GORM row types for every table and their
// conversions to and from domain entities. Tables that share a shape
// across record kinds (expenses, attachments) use one model with an
// explicit table name chosen by the repository.
package models
