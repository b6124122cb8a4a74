package models

import "github.com/jinzhu/gorm"

// LaunchInfo is an admissible launch host. Block marks a host temporarily
// excluded from random selection (maintenance, overload) without deleting
// the row.
type LaunchInfo struct {
	gorm.Model
	HostName string `gorm:"column:host_name;unique;not null"`
	Block    bool   `gorm:"column:block;not null"`
}

// TableName sets the table name for LaunchInfo explicitly.
func (LaunchInfo) TableName() string {
	return "launch_infos"
}
