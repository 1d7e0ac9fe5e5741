package attachments

type Attachment struct {
	ID         int64  `json:"id"`
	DocumentID int64  `json:"documentId"`
	FileName   string `json:"fileName"`
	FilePath   string `json:"filePath"`
}
