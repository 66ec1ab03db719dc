package capture

import (
	"testing"

	"gocv.io/x/gocv"
)

func TestMirror(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	src := gocv.NewMatWithSize(4, 6, gocv.MatTypeCV8UC1)
	defer src.Close()
	src.SetUCharAt(1, 0, 200)

	dst := Mirror(&src)
	defer dst.Close()

	if dst.Rows() != src.Rows() || dst.Cols() != src.Cols() {
		t.Fatalf("size = %dx%d, want %dx%d", dst.Cols(), dst.Rows(), src.Cols(), src.Rows())
	}
	if got := dst.GetUCharAt(1, 5); got != 200 {
		t.Errorf("mirrored pixel = %d, want 200", got)
	}
	if got := dst.GetUCharAt(1, 0); got != 0 {
		t.Errorf("left pixel = %d, want 0", got)
	}
	if got := src.GetUCharAt(1, 0); got != 200 {
		t.Error("source should not be modified")
	}
}

func TestToRGB(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	// Pure blue in BGR order
	src := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 0, 0, 0), 2, 2, gocv.MatTypeCV8UC3)
	defer src.Close()

	dst := ToRGB(&src)
	defer dst.Close()

	if dst.Channels() != 3 {
		t.Fatalf("channels = %d, want 3", dst.Channels())
	}

	px := dst.GetVecbAt(0, 0)
	if px[0] != 0 || px[1] != 0 || px[2] != 255 {
		t.Errorf("RGB pixel = %v, want [0 0 255]", px)
	}
}
