package utils

import (
	"bytes"
	"crypto/sha1"
	"elearn/config"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// Chunk size for large uploads (20 MB, the storage API minimum is 5 MB)
const uploadChunkSize = 20 * 1024 * 1024

// UploadResult is the subset of the storage API response we keep. Only the
// secure URL is ever persisted; the application never assumes local
// durability of an uploaded file.
type UploadResult struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// UploadFile sends a small file (receipt, thumbnail, attachment) to media
// storage synchronously and returns its secure URL. Bounded-latency
// transfers stay in the request path; anything unbounded goes through the
// async worker instead.
func UploadFile(file *multipart.FileHeader, folder string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	return doUpload(src, file.Filename, "auto", folder, nil)
}

// UploadRawFile is UploadFile for non-media documents (PDFs etc.), stored
// with resource type raw.
func UploadRawFile(file *multipart.FileHeader, folder string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	return doUpload(src, file.Filename, "raw", folder, nil)
}

// UploadLargeFile uploads a staged local file (video) in chunks. Used only
// by the background upload worker.
func UploadLargeFile(path, resourceType, folder string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return "", err
	}

	total := stat.Size()
	if total <= uploadChunkSize {
		return doUpload(f, stat.Name(), resourceType, folder, nil)
	}

	// The API correlates chunks of one upload by a shared id; each chunk
	// carries its byte range and the last response holds the final URL.
	uploadID := uuid.NewString()
	buf := make([]byte, uploadChunkSize)
	var offset int64
	var lastURL string

	for offset < total {
		n, err := io.ReadFull(f, buf)
		if err != nil && err != io.ErrUnexpectedEOF {
			return "", err
		}
		chunk := buf[:n]

		headers := map[string]string{
			"X-Unique-Upload-Id": uploadID,
			"Content-Range":      fmt.Sprintf("bytes %d-%d/%d", offset, offset+int64(n)-1, total),
		}

		url, err := doUpload(bytes.NewReader(chunk), stat.Name(), resourceType, folder, headers)
		if err != nil {
			return "", err
		}
		lastURL = url
		offset += int64(n)
	}

	if lastURL == "" {
		return "", fmt.Errorf("upload finished without a result URL")
	}
	return lastURL, nil
}

// doUpload performs one signed POST to the storage upload endpoint.
func doUpload(reader io.Reader, filename, resourceType, folder string, headers map[string]string) (string, error) {
	cfg := config.AppConfig
	if cfg.MediaCloudName == "" || cfg.MediaAPIKey == "" || cfg.MediaAPISecret == "" {
		return "", fmt.Errorf("media storage is not configured")
	}

	timestamp := fmt.Sprintf("%d", time.Now().Unix())
	params := map[string]string{
		"folder":    folder,
		"timestamp": timestamp,
	}

	endpoint := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/%s/upload",
		cfg.MediaCloudName, resourceType)

	client := resty.New().SetTimeout(5 * time.Minute)

	req := client.R().
		SetFileReader("file", filename, reader).
		SetFormData(map[string]string{
			"api_key":   cfg.MediaAPIKey,
			"timestamp": timestamp,
			"folder":    folder,
			"signature": signParams(params, cfg.MediaAPISecret),
		}).
		SetResult(&UploadResult{}).
		SetError(&UploadResult{})

	for k, v := range headers {
		req.SetHeader(k, v)
	}

	resp, err := req.Post(endpoint)
	if err != nil {
		return "", err
	}

	if resp.IsError() {
		apiErr := resp.Error().(*UploadResult)
		if apiErr.Error.Message != "" {
			return "", fmt.Errorf("media storage rejected upload: %s", apiErr.Error.Message)
		}
		return "", fmt.Errorf("media storage rejected upload: HTTP %d", resp.StatusCode())
	}

	result := resp.Result().(*UploadResult)
	if result.SecureURL == "" {
		return "", fmt.Errorf("media storage returned no secure_url")
	}
	return result.SecureURL, nil
}

// signParams builds the request signature: sha1 over the sorted key=value
// pairs joined by & with the API secret appended.
func signParams(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}
