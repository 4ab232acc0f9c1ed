package dbmodels

type FileType string

const (
	RecordingFileType FileType = "RECORDING"
)

type FileStorage struct {
	BaseModel
	UserID      string   `gorm:"type:varchar(36);index"`
	AnswerID    string   `gorm:"type:varchar(36);index"`
	FileType    FileType `gorm:"type:varchar(20)"`
	FileName    string   `gorm:"type:varchar(255)"`
	ContentType string   `gorm:"type:varchar(100)"`
}
