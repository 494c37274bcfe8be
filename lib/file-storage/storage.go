package filestorage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	"horeca-jobs-backend/config"
)

type Provider interface {
	UploadFile(ctx context.Context, orgID, fileID string, fileReader io.Reader, fileSize int64, contentType string) error
	GetFile(ctx context.Context, orgID, fileID string) ([]byte, error)
	DeleteFile(ctx context.Context, orgID, fileID string) error
	MakeOrgBucket(ctx context.Context, orgID string) error
}

var Instance Provider

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) UploadFile(ctx context.Context, orgID, fileID string, fileReader io.Reader, fileSize int64, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := i.s3client.PutObject(ctx, i.getOrgBucketName(orgID), fileID, fileReader, fileSize,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrap(err, "ошибка загрузки файла в хранилище")
	}
	return nil
}

func (i impl) GetFile(ctx context.Context, orgID, fileID string) ([]byte, error) {
	object, err := i.s3client.GetObject(ctx, i.getOrgBucketName(orgID), fileID, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения файла из хранилища")
	}
	defer object.Close()
	data, err := io.ReadAll(object)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка чтения файла из хранилища")
	}
	return data, nil
}

func (i impl) DeleteFile(ctx context.Context, orgID, fileID string) error {
	err := i.s3client.RemoveObject(ctx, i.getOrgBucketName(orgID), fileID, minio.RemoveObjectOptions{})
	if err != nil {
		return errors.Wrap(err, "ошибка удаления файла из хранилища")
	}
	return nil
}

func (i impl) MakeOrgBucket(ctx context.Context, orgID string) error {
	bucketName := i.getOrgBucketName(orgID)
	location := "us-east-1"
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
}

func (i impl) getOrgBucketName(orgID string) string {
	return fmt.Sprintf("%s-%s", config.Conf.S3.BucketName, orgID)
}
