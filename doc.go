/*
go-perception provides the geometric result types exchanged between the stages
of a visual perception pipeline.  Object detectors, pose estimators and camera
calibration loaders produce them, while trackers, renderers and 3D projection
code consume them.

The main types are:

  - Box, a bounding box that holds either the corner (xmin, ymin, xmax, ymax)
    or origin+extent (top, left, width, height) representation and converts
    between them on demand.
  - Bbox and InstanceSegmentation, the flat corner form records emitted by
    raw detectors, the latter referencing a mask held in a MaskArena.
  - Detection, a bounding box with an ordered set of LandmarkPoint's such as
    the eyes, nose and mouth of a face detector.
  - HumanPose, the keypoints of a pose estimation with the ability to derive
    a Box around all detected keypoints.

Camera intrinsics live in the camera subpackage, pose tracking in tracker and
visualization in render.
*/
package perception
