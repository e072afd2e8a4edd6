package utils

import (
	"academy/config"
	"errors"
	"time"

	"github.com/go-resty/resty/v2"
)

type assetDeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DeleteAsset removes a file from the asset host by its public id. Called when
// a course or profile image is replaced, or a course is deleted. Best effort:
// callers log failures instead of aborting.
func DeleteAsset(publicID string) error {
	if publicID == "" {
		return nil
	}

	client := resty.New().SetTimeout(15 * time.Second)

	var result assetDeleteResponse
	resp, err := client.R().
		SetHeader("clouder-access-key", config.AppConfig.ClouderKey).
		SetBody(map[string]string{"public_id": publicID}).
		SetResult(&result).
		Delete(config.AppConfig.ClouderURL + "/delete")
	if err != nil {
		return err
	}

	if !resp.IsSuccess() || !result.Success {
		if result.Message != "" {
			return errors.New(result.Message)
		}
		return errors.New("Unable to delete file")
	}
	return nil
}
