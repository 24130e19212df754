package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"recruit-flow-backend/config"
	"recruit-flow-backend/db"
	personstore "recruit-flow-backend/lib/person/store"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

type Provider interface {
	UploadResume(ctx context.Context, spaceID, personID string, file []byte, fileName string) error
	GetResume(ctx context.Context, spaceID, personID string) (data []byte, fileName string, err error)
	MakeSpaceBucket(ctx context.Context, spaceID string) error
}

var Instance Provider

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client:    s3client,
		personStore: personstore.NewInstance(db.DB),
	}
}

type impl struct {
	s3client    *minio.Client
	personStore personstore.Provider
}

func (i impl) UploadResume(ctx context.Context, spaceID, personID string, file []byte, fileName string) error {
	rec, err := i.personStore.GetByID(spaceID, personID)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("человек не найден")
	}
	if err = i.MakeSpaceBucket(ctx, spaceID); err != nil {
		return errors.Wrap(err, "ошибка подготовки бакета пространства")
	}
	bucketName := i.getSpaceBucketName(spaceID)
	objectKey := fmt.Sprintf("resume/%s/%s", personID, fileName)
	reader := bytes.NewReader(file)
	_, err = i.s3client.PutObject(ctx, bucketName, objectKey, reader, int64(len(file)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		return errors.Wrap(err, "ошибка сохранения резюме в s3")
	}
	updMap := map[string]interface{}{"resume_key": objectKey}
	return i.personStore.Update(spaceID, personID, updMap)
}

func (i impl) GetResume(ctx context.Context, spaceID, personID string) ([]byte, string, error) {
	rec, err := i.personStore.GetByID(spaceID, personID)
	if err != nil {
		return nil, "", err
	}
	if rec == nil || rec.ResumeKey == "" {
		return nil, "", nil
	}
	bucketName := i.getSpaceBucketName(spaceID)
	object, err := i.s3client.GetObject(ctx, bucketName, rec.ResumeKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения резюме из s3")
	}
	defer object.Close()
	data, err := io.ReadAll(object)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка чтения резюме из s3")
	}
	return data, fileNameFromKey(rec.ResumeKey), nil
}

func (i impl) MakeSpaceBucket(ctx context.Context, spaceID string) error {
	bucketName := i.getSpaceBucketName(spaceID)
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: "us-east-1"})
}

func (i impl) getSpaceBucketName(spaceID string) string {
	return fmt.Sprintf("%s-%s", config.Conf.S3.BucketName, spaceID)
}

func fileNameFromKey(key string) string {
	for idx := len(key) - 1; idx >= 0; idx-- {
		if key[idx] == '/' {
			return key[idx+1:]
		}
	}
	return key
}
