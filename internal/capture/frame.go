package capture

import "gocv.io/x/gocv"

// Mirror returns a horizontally flipped copy of src, so displayed motion
// matches a mirror. The caller owns the returned Mat.
func Mirror(src *gocv.Mat) gocv.Mat {
	dst := gocv.NewMat()
	gocv.Flip(*src, &dst, 1)
	return dst
}

// ToRGB returns an RGB copy of a BGR frame. The caller owns the returned Mat.
func ToRGB(src *gocv.Mat) gocv.Mat {
	dst := gocv.NewMat()
	gocv.CvtColor(*src, &dst, gocv.ColorBGRToRGB)
	return dst
}
