package perception

import "github.com/x448/float16"

var f16LookupTable [65536]float32

func init() {
	// precompute float16 lookup table for faster conversion to float32
	for i := range f16LookupTable {
		f16 := float16.Frombits(uint16(i))
		f16LookupTable[i] = f16.Float32()
	}
}

// DecodeKeypointsF16 decodes keypoints from a half precision tensor as output
// by NPU pose models, where each keypoint is the triple x, y, score.  Keypoints
// scoring below minScore are returned as absent.
func DecodeKeypointsF16(raw []uint16, minScore float32) []Keypoint {

	kps := make([]Keypoint, 0, len(raw)/3)

	for i := 0; i+2 < len(raw); i += 3 {
		score := f16LookupTable[raw[i+2]]

		if score < minScore {
			kps = append(kps, Keypoint{Score: score})
			continue
		}

		kps = append(kps, Keypoint{
			X:       f16LookupTable[raw[i]],
			Y:       f16LookupTable[raw[i+1]],
			Score:   score,
			Present: true,
		})
	}

	return kps
}
