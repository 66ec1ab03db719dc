package capture

import (
	"errors"
	"testing"

	"gocv.io/x/gocv"
)

func TestMockCamera_Playback(t *testing.T) {
	frame1 := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame1.Close()
	frame2 := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame2.Close()

	cam := NewMockCamera([]*gocv.Mat{&frame1, &frame2}, false)

	if err := cam.Open(); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer cam.Close()

	for i := 0; i < 2; i++ {
		f, err := cam.ReadFrame()
		if err != nil {
			t.Fatalf("ReadFrame() %d error = %v", i, err)
		}
		f.Close()
	}

	// Third read should fail (no loop)
	_, err := cam.ReadFrame()
	if !errors.Is(err, ErrReadFailure) {
		t.Errorf("error = %v, want ErrReadFailure", err)
	}
}

func TestMockCamera_Loop(t *testing.T) {
	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	cam := NewMockCamera([]*gocv.Mat{&frame}, true)
	cam.Open()
	defer cam.Close()

	for i := 0; i < 5; i++ {
		f, err := cam.ReadFrame()
		if err != nil {
			t.Fatalf("ReadFrame() iteration %d error = %v", i, err)
		}
		f.Close()
	}
}

func TestMockCamera_FailOpen(t *testing.T) {
	cam := NewMockCamera(nil, false)
	cam.FailOpen()

	if err := cam.Open(); !errors.Is(err, ErrDeviceUnavailable) {
		t.Errorf("Open() error = %v, want ErrDeviceUnavailable", err)
	}
	if cam.IsOpen() {
		t.Error("camera should not be open")
	}

	cam.Close()
	if cam.Releases() != 0 {
		t.Errorf("Releases() = %d, want 0", cam.Releases())
	}
}

func TestMockCamera_Releases(t *testing.T) {
	cam := NewMockCamera(nil, false)

	if _, err := cam.ReadFrame(); !errors.Is(err, ErrCameraNotOpen) {
		t.Errorf("ReadFrame() before Open error = %v, want ErrCameraNotOpen", err)
	}

	cam.Open()
	cam.Close()
	cam.Close()

	if cam.Releases() != 1 {
		t.Errorf("Releases() = %d, want 1", cam.Releases())
	}
}

func TestMockCamera_SetFrames(t *testing.T) {
	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	cam := NewMockCamera(nil, false)
	cam.Open()
	defer cam.Close()

	if _, err := cam.ReadFrame(); !errors.Is(err, ErrReadFailure) {
		t.Fatalf("ReadFrame() with no frames error = %v, want ErrReadFailure", err)
	}

	cam.SetFrames([]*gocv.Mat{&frame})

	f, err := cam.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame() after SetFrames error = %v", err)
	}
	defer f.Close()
	if f.Rows() != 480 || f.Cols() != 640 {
		t.Errorf("frame size = %dx%d, want 640x480", f.Cols(), f.Rows())
	}
}

func TestMockCamera_FailClose(t *testing.T) {
	closeErr := errors.New("release failed")
	cam := NewMockCamera(nil, false)
	cam.FailClose(closeErr)
	cam.Open()

	if err := cam.Close(); !errors.Is(err, closeErr) {
		t.Errorf("Close() error = %v, want %v", err, closeErr)
	}
	if cam.Releases() != 1 || cam.IsOpen() {
		t.Error("camera should be released despite the error")
	}
}
