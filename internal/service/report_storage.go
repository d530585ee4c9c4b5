package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ReportStorage archives exported report workbooks in an S3 bucket.
type ReportStorage struct {
	BucketName string
	Client     *s3.Client
}

// NewReportStorage initializes the S3-backed report storage
func NewReportStorage(region, bucketName string) (*ReportStorage, error) {
	if bucketName == "" {
		return nil, fmt.Errorf("nom du bucket S3 manquant")
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("erreur de chargement de la configuration AWS: %w", err)
	}

	return &ReportStorage{
		BucketName: bucketName,
		Client:     s3.NewFromConfig(cfg),
	}, nil
}

// UploadReport uploads one workbook and returns its public URL. Implements
// application.ReportUploader.
func (s *ReportStorage) UploadReport(filename string, content []byte) (string, error) {
	key := fmt.Sprintf("rapports/%d_%s", time.Now().Unix(), filename)

	_, err := s.Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(s.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"),
	})
	if err != nil {
		return "", fmt.Errorf("erreur d'envoi du rapport vers S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.BucketName, key), nil
}
