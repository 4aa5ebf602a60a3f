package models

// Setting is a key/value row of 'humo_settings'.
type Setting struct {
	ID       uint   `gorm:"column:setting_id;primaryKey;autoIncrement"`
	Variable string `gorm:"column:setting_variable;size:50;index"`
	Value    string `gorm:"column:setting_value;type:text"`
}

func (Setting) TableName() string {
	return "humo_settings"
}

// FlagEnabled is the CMS value for a switched-on setting.
const FlagEnabled = "j"

const SettingURLRewrite = "url_rewrite"
