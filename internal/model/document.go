package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is a file-upload record. There is no update route; access follows
// the uploader.
type Document struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Filename     string             `bson:"filename" json:"filename"`
	OriginalName string             `bson:"originalName" json:"originalName"`
	FilePath     string             `bson:"filePath" json:"filePath"`
	FileType     string             `bson:"fileType,omitempty" json:"fileType,omitempty"`
	FileSize     int64              `bson:"fileSize,omitempty" json:"fileSize,omitempty"`
	Category     string             `bson:"category" json:"category"`
	Lead         primitive.ObjectID `bson:"lead,omitempty" json:"lead,omitempty"`
	Contact      primitive.ObjectID `bson:"contact,omitempty" json:"contact,omitempty"`
	UploadedBy   primitive.ObjectID `bson:"uploadedBy" json:"uploadedBy"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

func (d *Document) GetID() primitive.ObjectID   { return d.ID }
func (d *Document) SetID(id primitive.ObjectID) { d.ID = id }

type CreateDocumentRequest struct {
	Filename     string `json:"filename" binding:"required"`
	OriginalName string `json:"originalName" binding:"required"`
	FilePath     string `json:"filePath" binding:"required"`
	FileType     string `json:"fileType"`
	FileSize     int64  `json:"fileSize"`
	Category     string `json:"category" binding:"omitempty,oneof=proposal invoice agreement quote other"`
	Lead         string `json:"lead"`
	Contact      string `json:"contact"`
}
