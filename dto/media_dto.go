package dto

import "github.com/zapdesk/zapdesk-backend/models"

type APIUploadedMedia struct {
	Url  string `json:"url"`
	Path string `json:"path"`
}

func AdaptUploadedMediaDto(media models.UploadedMedia) APIUploadedMedia {
	return APIUploadedMedia{
		Url:  media.Url,
		Path: media.Path,
	}
}
