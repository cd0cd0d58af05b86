package minio

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

// UploadBytes 上传字节内容到报告桶
func UploadBytes(ctx context.Context, objectName string, data []byte, contentType string) error {
	if Client == nil {
		return fmt.Errorf("minio client is not initialized")
	}
	_, err := Client.PutObject(ctx, ReportBucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}
	return nil
}

// PresignedURL 生成限时下载链接
func PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	if Client == nil {
		return "", fmt.Errorf("minio client is not initialized")
	}
	reqParams := make(url.Values)
	presigned, err := Client.PresignedGetObject(ctx, ReportBucket, objectName, expiry, reqParams)
	if err != nil {
		return "", fmt.Errorf("failed to presign object: %w", err)
	}
	return presigned.String(), nil
}

// DeleteObject 删除报告产物
func DeleteObject(ctx context.Context, objectName string) error {
	if Client == nil {
		return fmt.Errorf("minio client is not initialized")
	}
	return Client.RemoveObject(ctx, ReportBucket, objectName, minio.RemoveObjectOptions{})
}
