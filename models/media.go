package models

import "io"

type MediaType string

const (
	MediaLogo       MediaType = "logo"
	MediaBanner     MediaType = "banner"
	MediaAttachment MediaType = "attachment"
)

func (t MediaType) Valid() bool {
	switch t {
	case MediaLogo, MediaBanner, MediaAttachment:
		return true
	}
	return false
}

type UploadMediaInput struct {
	WorkspaceId string
	Type        MediaType
	FileName    string
	ContentType string
	Reader      io.Reader
}

type UploadedMedia struct {
	Url  string
	Path string
}
