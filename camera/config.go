package camera

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// calibrationFile is the layout of a YAML calibration file
//
//	camera:
//	  fx: 615.3
//	  fy: 615.9
//	  cx: 320.1
//	  cy: 240.7
//	  scale: 1000
type calibrationFile struct {
	Camera CameraIntrinsicParams `yaml:"camera"`
}

// ParseIntrinsics decodes and validates YAML calibration data
func ParseIntrinsics(data []byte) (CameraIntrinsicParams, error) {

	var cf calibrationFile

	if err := yaml.Unmarshal(data, &cf); err != nil {
		return CameraIntrinsicParams{}, fmt.Errorf("error parsing calibration: %w", err)
	}

	if err := cf.Camera.Validate(); err != nil {
		return CameraIntrinsicParams{}, err
	}

	return cf.Camera, nil
}

// LoadIntrinsics reads the camera calibration from a YAML file
func LoadIntrinsics(path string) (CameraIntrinsicParams, error) {

	data, err := os.ReadFile(path)

	if err != nil {
		return CameraIntrinsicParams{}, fmt.Errorf("error reading calibration file: %w", err)
	}

	params, err := ParseIntrinsics(data)

	if err != nil {
		return CameraIntrinsicParams{}, fmt.Errorf("%s: %w", path, err)
	}

	return params, nil
}
