package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/yojanasetu/portal-go/internal/config"
)

var Client *minioSDK.Client
var BucketName string

func InitMinio() {
	endpoint := config.MinioEndpoint
	accessKey := config.MinioAccessKey
	secretKey := config.MinioSecretKey
	useSSL := config.MinioUseSSL
	BucketName = config.MinioBucket

	minioClient, err := minioSDK.New(endpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to MinIO: %v", err)
	}

	log.Println("✅ Successfully connected to MinIO")

	// Check if bucket exists, create if not
	ctx := context.Background()
	exists, err := minioClient.BucketExists(ctx, BucketName)
	if err != nil {
		log.Fatalf("❌ Failed to check bucket existence: %v", err)
	}

	if !exists {
		err := minioClient.MakeBucket(ctx, BucketName, minioSDK.MakeBucketOptions{})
		if err != nil {
			log.Fatalf("❌ Failed to create bucket: %v", err)
		}
		log.Printf("✅ Bucket created: %s\n", BucketName)
	} else {
		log.Printf("ℹ️ Bucket already exists: %s\n", BucketName)
	}

	Client = minioClient
}

// UploadDocument stores one submitted document and returns the object name
// used as the document reference on the application record. A random prefix
// keeps citizens' uploads from colliding on filename.
func UploadDocument(ctx context.Context, originalName string, contentType string, contentReader io.Reader, contentSize int64) (string, error) {
	if strings.TrimSpace(originalName) == "" {
		return "", fmt.Errorf("file name cannot be empty")
	}

	objectName := fmt.Sprintf("documents/%s%s", uuid.NewString(), filepath.Ext(originalName))
	_, err := Client.PutObject(ctx, BucketName, objectName, contentReader, contentSize, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return objectName, nil
}

// DownloadDocument fetches a stored document by its reference.
func DownloadDocument(ctx context.Context, objectName string) ([]byte, string, error) {
	obj, err := Client.GetObject(ctx, BucketName, objectName, minioSDK.GetObjectOptions{})
	if err != nil {
		return nil, "", err
	}
	defer obj.Close()

	stat, err := obj.Stat()
	if err != nil {
		return nil, "", err
	}

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, "", err
	}
	return data, stat.ContentType, nil
}

// DeleteDocument removes a stored document.
func DeleteDocument(ctx context.Context, objectName string) error {
	return Client.RemoveObject(ctx, BucketName, objectName, minioSDK.RemoveObjectOptions{})
}
