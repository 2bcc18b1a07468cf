package tesseract4d

type Real = float64

const (
	Dim             = 4    // rotation and projection are hardwired to 4D
	MaxDimension    = 16   // BuildHypercube refuses larger n (2^n vertices, n*2^n planes)
	Speed           = 0.01 // pointer -> angle scale
	ZWStep          = 0.01 // fixed zw increment per frame (radians)
	LightSource     = 1.5  // virtual light source position on the w axis
	LiveProjectionW = 1    // scalar passed to Project on every live frame
	CameraFovDeg    = 75
	CameraNear      = 0.1
	CameraFar       = 1000
	CameraDistance  = 10 // camera sits on +z looking at the origin
	FloatsPerEdge   = 6  // two xyz endpoints
	eps             = 1e-12
)
