package database

import "database/sql"

// Message rows are written once and never updated or deleted. The text column
// is nullable: a submission without the form field stores NULL.
type Message struct {
	Id      int            `gorm:"primaryKey;autoIncrement"`
	Message sql.NullString `gorm:"type:text"`
}
