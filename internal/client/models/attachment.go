package models

// Attachment is a locally picked document ready for upload.
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

func (a *Attachment) Size() int64 {
	if a == nil {
		return 0
	}
	return int64(len(a.Data))
}
