package detector

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"
)

// frameHeaderSize is the size of the width, height and payload length prefix
// written before every frame.
const frameHeaderSize = 12

// MediaPipeDetector implements Detector using a Python MediaPipe subprocess.
type MediaPipeDetector struct {
	config  Config
	script  string
	log     *logrus.Entry
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	stdout  *bufio.Reader
	logDone chan struct{}
	mu      sync.Mutex
	started bool
}

// NewMediaPipeDetector creates a new MediaPipe detector.
// The Python process is started lazily on first detection.
func NewMediaPipeDetector(config Config, log *logrus.Entry) (*MediaPipeDetector, error) {
	script := config.ScriptPath
	if script == "" {
		script = findLandmarkScript()
	}
	if script == "" {
		return nil, ErrScriptNotFound
	}
	if _, err := os.Stat(script); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrScriptNotFound, script)
	}

	if config.MaxHands <= 0 {
		config.MaxHands = DefaultConfig().MaxHands
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	return &MediaPipeDetector{
		config: config,
		script: script,
		log:    log.WithField("component", "detector"),
	}, nil
}

// Detect sends an RGB frame to the landmark service and returns the detected hands.
func (d *MediaPipeDetector) Detect(frame *gocv.Mat) ([]Hand, error) {
	if frame == nil || frame.Empty() {
		return nil, fmt.Errorf("%w: empty", ErrInvalidFrame)
	}
	if frame.Channels() != 3 {
		return nil, fmt.Errorf("%w: %d channels, want 3", ErrInvalidFrame, frame.Channels())
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.ensureStarted(); err != nil {
		return nil, err
	}

	if err := writeFrame(d.stdin, frame.Cols(), frame.Rows(), frame.ToBytes()); err != nil {
		return nil, err
	}

	return readHands(d.stdout, d.config.MaxHands)
}

// Close shuts down the Python process.
func (d *MediaPipeDetector) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shutdown()
}

func (d *MediaPipeDetector) ensureStarted() error {
	if d.started {
		return nil
	}

	pythonPath := d.config.PythonPath
	if pythonPath == "" {
		pythonPath = findVenvPython()
	}
	if pythonPath == "" {
		pythonPath = "python3"
	}

	d.cmd = exec.Command(pythonPath, d.script,
		"--max-hands", strconv.Itoa(d.config.MaxHands),
		"--min-detection-confidence", strconv.FormatFloat(d.config.MinConfidence, 'f', -1, 64),
		"--min-tracking-confidence", strconv.FormatFloat(d.config.MinTrackingConf, 'f', -1, 64),
	)

	stdin, err := d.cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("create stdin pipe: %w", err)
	}

	stdout, err := d.cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("create stdout pipe: %w", err)
	}

	stderr, err := d.cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("create stderr pipe: %w", err)
	}

	if err := d.cmd.Start(); err != nil {
		return fmt.Errorf("start landmark service: %w", err)
	}

	d.stdin = stdin
	d.stdout = bufio.NewReader(stdout)
	d.logDone = make(chan struct{})
	d.started = true

	go func(done chan struct{}) {
		defer close(done)
		forwardStderr(stderr, d.log)
	}(d.logDone)

	d.log.WithFields(logrus.Fields{
		"python":    pythonPath,
		"script":    d.script,
		"max_hands": d.config.MaxHands,
	}).Info("Landmark service started")

	return nil
}

func (d *MediaPipeDetector) shutdown() error {
	if !d.started {
		return nil
	}

	if d.stdin != nil {
		d.stdin.Close()
	}

	// Wait closes the stderr pipe, so drain it first
	<-d.logDone
	err := d.cmd.Wait()

	d.started = false
	d.cmd = nil
	d.stdin = nil
	d.stdout = nil
	d.logDone = nil

	return err
}

// writeFrame writes one frame as a big-endian header (width, height, payload
// length) followed by the raw RGB bytes.
func writeFrame(w io.Writer, width, height int, data []byte) error {
	header := make([]byte, frameHeaderSize)
	binary.BigEndian.PutUint32(header[0:4], uint32(width))
	binary.BigEndian.PutUint32(header[4:8], uint32(height))
	binary.BigEndian.PutUint32(header[8:12], uint32(len(data)))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write data: %w", err)
	}
	return nil
}

// forwardStderr logs every line the landmark service writes to stderr at Warn,
// so import errors and tracebacks stay visible at the default level.
func forwardStderr(r io.Reader, log logrus.FieldLogger) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		log.WithField("stream", "stderr").Warn(sc.Text())
	}
	if err := sc.Err(); err != nil {
		log.WithError(err).Warn("Landmark service stderr closed")
	}
}

// readHands reads one JSON response line from the landmark service and keeps
// at most maxHands of the reported hands.
func readHands(r *bufio.Reader, maxHands int) ([]Hand, error) {
	line, err := r.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var response jsonResponse
	if err := json.Unmarshal(line, &response); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	if response.Error != "" {
		return nil, fmt.Errorf("landmark service: %s", response.Error)
	}

	result := make([]Hand, len(response.Hands))
	for i, h := range response.Hands {
		hand, err := h.toHand()
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i, err)
		}
		result[i] = hand
	}

	return capHands(result, maxHands), nil
}

// capHands truncates hands to at most n entries. A non-positive n keeps all.
func capHands(hands []Hand, n int) []Hand {
	if n > 0 && len(hands) > n {
		return hands[:n]
	}
	return hands
}

func findLandmarkScript() string {
	execPath, err := os.Executable()
	var execDir string
	if err == nil {
		execDir = filepath.Dir(execPath)
	}

	candidates := []string{
		"scripts/landmark_service.py",
		"../scripts/landmark_service.py",
		filepath.Join(execDir, "scripts/landmark_service.py"),
		filepath.Join(os.Getenv("HOME"), ".palmtrace/scripts/landmark_service.py"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				return absPath
			}
			return path
		}
	}
	return ""
}

// findVenvPython looks for a Python interpreter in a virtual environment.
func findVenvPython() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}
	execDir := filepath.Dir(execPath)

	candidates := []string{
		"venv/bin/python",
		"../venv/bin/python",
		filepath.Join(execDir, "venv/bin/python"),
		filepath.Join(os.Getenv("HOME"), ".palmtrace/venv/bin/python"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				return absPath
			}
			return path
		}
	}
	return ""
}

// jsonResponse represents one reply line from the landmark service.
type jsonResponse struct {
	Hands []jsonHand `json:"hands"`
	Error string     `json:"error,omitempty"`
}

type jsonHand struct {
	Points []Point `json:"points"`
}

func (h jsonHand) toHand() (Hand, error) {
	var hand Hand
	if len(h.Points) != NumLandmarks {
		return hand, fmt.Errorf("%w: got %d landmarks, want %d", ErrMalformedHand, len(h.Points), NumLandmarks)
	}
	copy(hand.Points[:], h.Points)
	return hand, nil
}
