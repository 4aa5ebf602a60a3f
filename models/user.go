package models

// User is a CMS account in 'humo_users'. The export acts as one of these
// (the guest user by default) to pick up its group settings.
type User struct {
	ID      uint      `gorm:"column:user_id;primaryKey;autoIncrement"`
	Name    string    `gorm:"column:user_name;size:25;uniqueIndex;not null"`
	GroupID uint      `gorm:"column:user_group_id;not null"`
	Group   UserGroup `gorm:"foreignKey:GroupID;references:ID"`
}

// UserGroup holds the privacy settings from 'humo_groups'. Flags use the
// CMS convention of "j" for enabled.
type UserGroup struct {
	ID                   uint   `gorm:"column:group_id;primaryKey;autoIncrement"`
	Name                 string `gorm:"column:group_name;size:25"`
	HideTrees            string `gorm:"column:group_hide_trees"` // tree ids, ';' separated
	PersHideTotallyAct   string `gorm:"column:group_pers_hide_totally_act;size:1;default:n"`
	PersHideTotallyValue string `gorm:"column:group_pers_hide_totally;size:50"`
}

func (User) TableName() string {
	return "humo_users"
}

func (UserGroup) TableName() string {
	return "humo_groups"
}
