// Package annotate draws detected hand landmarks onto video frames.
package annotate

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/ayusman/palmtrace/internal/detector"
	"github.com/lucasb-eyer/go-colorful"
)

// Label anchor offsets in pixels.
const (
	LabelMargin     = 10
	LabelTop        = 30
	RightLabelInset = 150
)

// Side is the screen side a hand is attributed to.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "Left"
	}
	return "Right"
}

// Classify attributes a hand to a side from the pixel x of its wrist and
// thumb tip. This is a mirrored-image heuristic, not anatomical handedness.
func Classify(wristX, thumbTipX int) Side {
	if wristX < thumbTipX {
		return Left
	}
	return Right
}

// Anchor returns the label origin for a side on a frame of the given width.
func Anchor(side Side, frameWidth int) image.Point {
	if side == Left {
		return image.Point{X: LabelMargin, Y: LabelTop}
	}
	return image.Point{X: frameWidth - RightLabelInset, Y: LabelTop}
}

// ToPixel converts a normalized point to pixel coordinates.
func ToPixel(p detector.Point, width, height int) image.Point {
	return image.Point{
		X: int(math.Round(p.X * float64(width))),
		Y: int(math.Round(p.Y * float64(height))),
	}
}

// Keypoint is a landmark in pixel space.
type Keypoint struct {
	Index detector.Landmark
	Pos   image.Point
}

// Hand is a detected hand located in pixel space for one frame.
type Hand struct {
	Keypoints [detector.NumLandmarks]Keypoint
	Side      Side
}

// Locate converts a detected hand to pixel space and classifies its side.
func Locate(h detector.Hand, width, height int) Hand {
	var located Hand
	for _, l := range detector.Landmarks() {
		located.Keypoints[l] = Keypoint{
			Index: l,
			Pos:   ToPixel(h.At(l), width, height),
		}
	}
	located.Side = Classify(
		located.Keypoints[detector.Wrist].Pos.X,
		located.Keypoints[detector.ThumbTip].Pos.X,
	)
	return located
}

// Style holds the colors and stroke sizes used for annotations.
type Style struct {
	KeypointColor   color.RGBA
	IndexColor      color.RGBA
	ConnectionColor color.RGBA
	LeftColor       color.RGBA
	RightColor      color.RGBA

	KeypointRadius      int
	ConnectionThickness int
	IndexScale          float64
	IndexThickness      int
	LabelScale          float64
	LabelThickness      int
}

// DefaultStyle returns blue keypoints and indices, green connections, and
// yellow/green labels for left/right hands.
func DefaultStyle() Style {
	return Style{
		KeypointColor:   hexColor("#0000ff"),
		IndexColor:      hexColor("#0000ff"),
		ConnectionColor: hexColor("#00ff00"),
		LeftColor:       hexColor("#ffff00"),
		RightColor:      hexColor("#00ff00"),

		KeypointRadius:      5,
		ConnectionThickness: 2,
		IndexScale:          0.5,
		IndexThickness:      1,
		LabelScale:          0.7,
		LabelThickness:      2,
	}
}

func hexColor(hex string) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// SideColor returns the label color for a side.
func (s Style) SideColor(side Side) color.RGBA {
	if side == Left {
		return s.LeftColor
	}
	return s.RightColor
}

// Annotator draws hand keypoints, skeleton connections and side labels.
type Annotator struct {
	style Style
}

// New creates an Annotator with the given style.
func New(style Style) *Annotator {
	return &Annotator{style: style}
}

// Annotate draws every hand onto the canvas in place and returns the hands
// located in pixel space. Nothing is drawn when hands is empty.
func (a *Annotator) Annotate(c Canvas, hands []detector.Hand) []Hand {
	if len(hands) == 0 {
		return nil
	}

	size := c.Size()
	located := make([]Hand, 0, len(hands))

	for _, h := range hands {
		hand := Locate(h, size.X, size.Y)

		for _, kp := range hand.Keypoints {
			c.Circle(kp.Pos, a.style.KeypointRadius, a.style.KeypointColor, -1)
		}

		for _, kp := range hand.Keypoints {
			c.Text(strconv.Itoa(int(kp.Index)), kp.Pos, a.style.IndexScale, a.style.IndexColor, a.style.IndexThickness)
		}

		for _, conn := range detector.Connections {
			c.Line(hand.Keypoints[conn.From].Pos, hand.Keypoints[conn.To].Pos, a.style.ConnectionColor, a.style.ConnectionThickness)
		}

		c.Text(hand.Side.String(), Anchor(hand.Side, size.X), a.style.LabelScale, a.style.SideColor(hand.Side), a.style.LabelThickness)

		located = append(located, hand)
	}

	return located
}
