package oss

import (
	"bytes"
	"context"
	"fmt"

	"Nestling.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var minioClient *minio.Client

const location = "us-east-1"

func InitMinio() error {
	var err error
	minioClient, err = minio.New(config.ConfigInfo.Minio.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.ConfigInfo.Minio.AccessKey, config.ConfigInfo.Minio.SecretKey, ""),
		Secure: false,
	})
	if err != nil {
		hlog.Errorf("Failed to create MinIO client: %v", err)
		return err
	}
	if err = ensureBucket(context.Background(), config.ConfigInfo.Minio.Bucket); err != nil {
		return err
	}
	hlog.Info("Connect Minio Success")
	return nil
}

func ensureBucket(ctx context.Context, bucketName string) error {
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		if err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location}); err != nil {
			return fmt.Errorf("create bucket error: %w", err)
		}
	}
	return nil
}

func suffixFor(contentType string) (string, error) {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg", nil
	case "image/png":
		return ".png", nil
	default:
		return "", fmt.Errorf("unsupported image format: %s", contentType)
	}
}

// UploadPostImage 帖子配图，对象名用uuid避免覆盖
func UploadPostImage(ctx context.Context, data []byte, contentType string, postId int64) (string, error) {
	suffix, err := suffixFor(contentType)
	if err != nil {
		return "", err
	}
	bucketName := config.ConfigInfo.Minio.Bucket
	objectName := fmt.Sprintf("posts/%d/%s%s", postId, uuid.New().String(), suffix)
	_, err = minioClient.PutObject(ctx, bucketName, objectName, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		hlog.Errorf("Failed to upload post image: %v", err)
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s", config.ConfigInfo.Minio.PublicUrl, bucketName, objectName), nil
}

// UploadIcon 上传新头像前先清掉旧的
func UploadIcon(ctx context.Context, data []byte, contentType string, uid string) (string, error) {
	deleteIcon(ctx, uid)
	suffix, err := suffixFor(contentType)
	if err != nil {
		return "", err
	}
	bucketName := config.ConfigInfo.Minio.Bucket
	objectName := "icons/" + uid + suffix
	_, err = minioClient.PutObject(ctx, bucketName, objectName, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		hlog.Errorf("Failed to upload icon: %v", err)
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s", config.ConfigInfo.Minio.PublicUrl, bucketName, objectName), nil
}

func UploadBanner(ctx context.Context, data []byte, contentType string, uid string) (string, error) {
	suffix, err := suffixFor(contentType)
	if err != nil {
		return "", err
	}
	bucketName := config.ConfigInfo.Minio.Bucket
	objectName := "banners/" + uid + suffix
	_, err = minioClient.PutObject(ctx, bucketName, objectName, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		hlog.Errorf("Failed to upload banner: %v", err)
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s", config.ConfigInfo.Minio.PublicUrl, bucketName, objectName), nil
}

func deleteIcon(ctx context.Context, uid string) {
	bucketName := config.ConfigInfo.Minio.Bucket
	keys := []string{
		"icons/" + uid + ".jpg",
		"icons/" + uid + ".png",
	}
	for _, key := range keys {
		if err := minioClient.RemoveObject(ctx, bucketName, key, minio.RemoveObjectOptions{}); err != nil {
			hlog.Warnf("Failed to delete %s: %v", key, err)
		}
	}
}

func DeleteObject(ctx context.Context, objectName string) error {
	return minioClient.RemoveObject(ctx, config.ConfigInfo.Minio.Bucket, objectName, minio.RemoveObjectOptions{})
}
