package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/swdee/go-perception"
	"github.com/swdee/go-perception/camera"
	"github.com/swdee/go-perception/internal/logger"
	"github.com/swdee/go-perception/render"
	"github.com/swdee/go-perception/tracker"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// scene is a recorded sequence of pose estimator and face detector outputs
type scene struct {
	Camera camera.CameraIntrinsicParams `yaml:"camera"`
	Width  int                          `yaml:"width"`
	Height int                          `yaml:"height"`
	// ModelSize is the square model input size the recorded coordinates
	// are in
	ModelSize int     `yaml:"modelSize"`
	Frames    []frame `yaml:"frames"`
}

type frame struct {
	Poses []struct {
		Score  float32 `yaml:"score"`
		IsFace bool    `yaml:"face"`
		// Keypoints are x,y pairs using -1,-1 for undetected keypoints
		Keypoints [][2]float32 `yaml:"keypoints"`
	} `yaml:"poses"`
	Detections []struct {
		Box       [4]float32   `yaml:"box"`
		Score     float32      `yaml:"score"`
		Class     int          `yaml:"class"`
		Landmarks [][2]float32 `yaml:"landmarks"`
	} `yaml:"detections"`
}

func main() {

	// read in cli flags
	sceneFile := flag.String("s", "../data/scene.yaml", "YAML scene file of recorded poses and detections")
	labelFile := flag.String("l", "../data/labels.txt", "Text file containing class labels")
	outFile := flag.String("o", "", "PNG file to render the last frame's boxes to")
	depth := flag.Float64("d", 2000, "Depth map value at the pose box centers, used for 3D positions")
	iou := flag.Float64("iou", 0.3, "Minimum IoU to associate a pose with a track")
	dev := flag.Bool("dev", false, "Use development logging")

	flag.Parse()

	initLog := logger.InitProduction

	if *dev {
		initLog = logger.InitDevelopment
	}

	if err := initLog(); err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing logger:", err)
		os.Exit(1)
	}

	defer logger.Sync()
	log := logger.Log()

	sc, err := loadScene(*sceneFile)

	if err != nil {
		log.Fatal("Error loading scene", zap.Error(err))
	}

	classNames, err := perception.LoadLabels(*labelFile)

	if err != nil {
		log.Fatal("Error loading labels", zap.Error(err))
	}

	log.Info("Loaded scene", zap.String("camera", sc.Camera.String()),
		zap.Int("frames", len(sc.Frames)))

	lb, err := perception.NewLetterbox(sc.Width, sc.Height, sc.ModelSize, sc.ModelSize)

	if err != nil {
		log.Fatal("Error calculating letterbox", zap.Error(err))
	}

	pt := tracker.NewPoseTracker(float32(*iou), 5)
	trail := tracker.NewTrail(30)

	var lastBoxes []perception.Box

	for i, fr := range sc.Frames {
		lastBoxes, err = processFrame(log.With(zap.Int("frame", i)), sc.Camera, lb,
			fr, pt, trail, *depth)

		if err != nil {
			log.Fatal("Error processing frame", zap.Int("frame", i), zap.Error(err))
		}
	}

	if *outFile != "" {
		if err := saveBoxes(*outFile, sc.Width, sc.Height, lastBoxes, classNames); err != nil {
			log.Fatal("Error saving image", zap.Error(err))
		}

		log.Info("Saved rendered boxes", zap.String("file", *outFile))
	}
}

// loadScene reads and validates the scene file
func loadScene(path string) (*scene, error) {

	data, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("error reading scene file: %w", err)
	}

	sc := &scene{}

	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, fmt.Errorf("error parsing scene file: %w", err)
	}

	if err := sc.Camera.Validate(); err != nil {
		return nil, err
	}

	return sc, nil
}

// processFrame derives and tracks the pose boxes of a frame and logs the
// results
func processFrame(log *zap.Logger, cam camera.CameraIntrinsicParams,
	lb perception.Letterbox, fr frame, pt *tracker.PoseTracker, trail *tracker.Trail, depth float64) ([]perception.Box, error) {

	poses := make([]perception.HumanPose, 0, len(fr.Poses))

	for _, p := range fr.Poses {
		kps := make([]perception.Keypoint, len(p.Keypoints))

		for i, xy := range p.Keypoints {
			kps[i] = perception.KeypointFromSentinel(xy[0], xy[1])
		}

		pose := perception.NewHumanPose(kps, p.Score)
		pose.IsFace = p.IsFace
		poses = append(poses, lb.PoseToSource(pose))
	}

	poses, err := pt.Update(poses)

	if err != nil {
		return nil, err
	}

	var boxes []perception.Box

	for _, pose := range poses {
		box, err := pose.ToBox()

		if errors.Is(err, perception.ErrEmptyExtent) {
			log.Warn("Pose has no detected keypoints", zap.Float32("score", pose.Score))
			continue
		}

		trail.Add(pose)

		o, err := box.AsOriginExtent()

		if err != nil {
			return nil, err
		}

		center := cam.Unproject(float64(o.Left+o.W/2), float64(o.Top+o.H/2), depth)

		log.Info("Pose",
			zap.Int("id", pose.PoseID),
			zap.Bool("face", pose.IsFace),
			zap.Int("keypoints", pose.PresentCount()),
			zap.Stringer("box", box),
			zap.Float32("area", box.Area()),
			zap.Float64s("position", []float64{center.X, center.Y, center.Z}),
			zap.Int("trail", len(trail.GetPoints(pose.PoseID))),
		)

		boxes = append(boxes, box)
	}

	for _, d := range fr.Detections {
		det := perception.Detection{
			X1: d.Box[0], Y1: d.Box[1], X2: d.Box[2], Y2: d.Box[3],
			Score: d.Score,
			Class: d.Class,
		}

		for _, lm := range d.Landmarks {
			det.Landmarks = append(det.Landmarks, perception.LandmarkPoint{X: lm[0], Y: lm[1]})
		}

		box := lb.DetectionToSource(det).Box()

		log.Info("Detection",
			zap.Stringer("box", box),
			zap.Int("landmarks", len(det.Landmarks)),
		)

		boxes = append(boxes, box)
	}

	return boxes, nil
}

// saveBoxes renders the boxes onto a blank image and writes it as PNG
func saveBoxes(path string, width, height int, boxes []perception.Box,
	classNames []string) error {

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	render.RasterBoxes(img, boxes, classNames, render.DefaultFont())

	f, err := os.Create(path)

	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("error encoding png: %w", err)
	}

	return f.Close()
}
