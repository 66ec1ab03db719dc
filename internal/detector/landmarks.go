// Package detector provides hand landmark detection interfaces and types.
package detector

import "fmt"

// Landmark identifies one of the 21 hand keypoints.
// Indices follow the MediaPipe hand landmark scheme.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
type Landmark int

const (
	Wrist Landmark = iota
	ThumbCMC
	ThumbMCP
	ThumbIP
	ThumbTip
	IndexMCP
	IndexPIP
	IndexDIP
	IndexTip
	MiddleMCP
	MiddlePIP
	MiddleDIP
	MiddleTip
	RingMCP
	RingPIP
	RingDIP
	RingTip
	PinkyMCP
	PinkyPIP
	PinkyDIP
	PinkyTip
)

// NumLandmarks is the number of keypoints in a detected hand.
const NumLandmarks = 21

var landmarkNames = [NumLandmarks]string{
	"WRIST",
	"THUMB_CMC", "THUMB_MCP", "THUMB_IP", "THUMB_TIP",
	"INDEX_FINGER_MCP", "INDEX_FINGER_PIP", "INDEX_FINGER_DIP", "INDEX_FINGER_TIP",
	"MIDDLE_FINGER_MCP", "MIDDLE_FINGER_PIP", "MIDDLE_FINGER_DIP", "MIDDLE_FINGER_TIP",
	"RING_FINGER_MCP", "RING_FINGER_PIP", "RING_FINGER_DIP", "RING_FINGER_TIP",
	"PINKY_MCP", "PINKY_PIP", "PINKY_DIP", "PINKY_TIP",
}

// String returns the landmark name used by the detector scheme.
func (l Landmark) String() string {
	if l < 0 || int(l) >= NumLandmarks {
		return fmt.Sprintf("Landmark(%d)", int(l))
	}
	return landmarkNames[l]
}

// Landmarks returns all landmarks in index order.
func Landmarks() []Landmark {
	all := make([]Landmark, NumLandmarks)
	for i := range all {
		all[i] = Landmark(i)
	}
	return all
}

// Connection is a pair of landmarks joined by a line in the hand skeleton.
type Connection struct {
	From Landmark
	To   Landmark
}

// Connections is the fixed hand skeleton topology.
var Connections = []Connection{
	{Wrist, ThumbCMC}, {ThumbCMC, ThumbMCP}, {ThumbMCP, ThumbIP}, {ThumbIP, ThumbTip},
	{Wrist, IndexMCP}, {IndexMCP, IndexPIP}, {IndexPIP, IndexDIP}, {IndexDIP, IndexTip},
	{IndexMCP, MiddleMCP}, {MiddleMCP, MiddlePIP}, {MiddlePIP, MiddleDIP}, {MiddleDIP, MiddleTip},
	{MiddleMCP, RingMCP}, {RingMCP, RingPIP}, {RingPIP, RingDIP}, {RingDIP, RingTip},
	{RingMCP, PinkyMCP}, {Wrist, PinkyMCP},
	{PinkyMCP, PinkyPIP}, {PinkyPIP, PinkyDIP}, {PinkyDIP, PinkyTip},
}

// Point is a keypoint position normalized to the image size (0.0-1.0).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Hand holds the 21 normalized keypoints of one detected hand.
type Hand struct {
	Points [NumLandmarks]Point `json:"points"`
}

// At returns the position of the given landmark.
func (h *Hand) At(l Landmark) Point {
	return h.Points[l]
}

// DetectionResult is the detector output for a single frame.
type DetectionResult struct {
	Hands []Hand `json:"hands"`
}
