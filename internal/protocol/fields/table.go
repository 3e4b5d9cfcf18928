package fields

import "github.com/danmuck/sepdata/internal/protocol/variant"

// Spec describes how one field id is decoded.
type Spec struct {
	ID   ID
	Name string
	Type variant.Type
	// Reserved ids are known but refused with protocol.ErrNotImplemented.
	Reserved bool
}

const (
	u8     = variant.TypeU8
	u16    = variant.TypeU16
	u32    = variant.TypeU32
	u64    = variant.TypeU64
	f64    = variant.TypeF64
	p2     = variant.TypePoint2D
	p3     = variant.TypePoint3D
	v3     = variant.TypeVector3D
	quat   = variant.TypeQuaternion
	str    = variant.TypeString
	vec    = variant.TypeVector
	wi     = variant.TypeWorldIntersection
	wis    = variant.TypeWorldIntersections
	marker = variant.TypeUserMarker
)

// specs lists every known field in id order.
var specs = []Spec{
	{ID: FrameNumber, Name: "FrameNumber", Type: u32},
	{ID: EstimatedDelay, Name: "EstimatedDelay", Type: u32},
	{ID: TimeStamp, Name: "TimeStamp", Type: u64},
	{ID: UserTimeStamp, Name: "UserTimeStamp", Type: u64},
	{ID: FrameRate, Name: "FrameRate", Type: f64},
	{ID: CameraPositions, Name: "CameraPositions", Type: vec},
	{ID: CameraRotations, Name: "CameraRotations", Type: vec},
	{ID: UserDefinedData, Name: "UserDefinedData", Type: u64},
	{ID: RealTimeClock, Name: "RealTimeClock", Type: u64},
	{ID: HeadPosition, Name: "HeadPosition", Type: p3},
	{ID: HeadPositionQ, Name: "HeadPositionQ", Type: f64},
	{ID: HeadRotationRodrigues, Name: "HeadRotationRodrigues", Type: v3},
	{ID: HeadNoseDirection, Name: "HeadNoseDirection", Type: v3},
	{ID: HeadUpDirection, Name: "HeadUpDirection", Type: v3},
	{ID: HeadLeftEarDirection, Name: "HeadLeftEarDirection", Type: v3},
	{ID: HeadHeading, Name: "HeadHeading", Type: f64},
	{ID: HeadPitch, Name: "HeadPitch", Type: f64},
	{ID: HeadRoll, Name: "HeadRoll", Type: f64},
	{ID: HeadRotationQ, Name: "HeadRotationQ", Type: f64},
	{ID: GazeOrigin, Name: "GazeOrigin", Type: p3},
	{ID: LeftGazeOrigin, Name: "LeftGazeOrigin", Type: p3},
	{ID: RightGazeOrigin, Name: "RightGazeOrigin", Type: p3},
	{ID: HeadRotationQuaternion, Name: "HeadRotationQuaternion", Type: quat},
	{ID: EyePosition, Name: "EyePosition", Type: p3},
	{ID: GazeDirection, Name: "GazeDirection", Type: v3},
	{ID: GazeDirectionQ, Name: "GazeDirectionQ", Type: f64},
	{ID: LeftEyePosition, Name: "LeftEyePosition", Type: p3},
	{ID: LeftGazeDirection, Name: "LeftGazeDirection", Type: v3},
	{ID: LeftGazeDirectionQ, Name: "LeftGazeDirectionQ", Type: f64},
	{ID: RightEyePosition, Name: "RightEyePosition", Type: p3},
	{ID: RightGazeDirection, Name: "RightGazeDirection", Type: v3},
	{ID: RightGazeDirectionQ, Name: "RightGazeDirectionQ", Type: f64},
	{ID: GazeHeading, Name: "GazeHeading", Type: f64},
	{ID: GazePitch, Name: "GazePitch", Type: f64},
	{ID: LeftGazeHeading, Name: "LeftGazeHeading", Type: f64},
	{ID: LeftGazePitch, Name: "LeftGazePitch", Type: f64},
	{ID: RightGazeHeading, Name: "RightGazeHeading", Type: f64},
	{ID: RightGazePitch, Name: "RightGazePitch", Type: f64},
	{ID: FilteredGazeDirection, Name: "FilteredGazeDirection", Type: v3},
	{ID: FilteredGazeDirectionQ, Name: "FilteredGazeDirectionQ", Type: f64},
	{ID: FilteredLeftGazeDirection, Name: "FilteredLeftGazeDirection", Type: v3},
	{ID: FilteredLeftGazeDirectionQ, Name: "FilteredLeftGazeDirectionQ", Type: f64},
	{ID: FilteredRightGazeDirection, Name: "FilteredRightGazeDirection", Type: v3},
	{ID: FilteredRightGazeDirectionQ, Name: "FilteredRightGazeDirectionQ", Type: f64},
	{ID: FilteredGazeHeading, Name: "FilteredGazeHeading", Type: f64},
	{ID: FilteredGazePitch, Name: "FilteredGazePitch", Type: f64},
	{ID: FilteredLeftGazeHeading, Name: "FilteredLeftGazeHeading", Type: f64},
	{ID: FilteredLeftGazePitch, Name: "FilteredLeftGazePitch", Type: f64},
	{ID: FilteredRightGazeHeading, Name: "FilteredRightGazeHeading", Type: f64},
	{ID: FilteredRightGazePitch, Name: "FilteredRightGazePitch", Type: f64},
	{ID: Saccade, Name: "Saccade", Type: u32},
	{ID: Fixation, Name: "Fixation", Type: u32},
	{ID: Blink, Name: "Blink", Type: u32},
	{ID: ClosestWorldIntersection, Name: "ClosestWorldIntersection", Type: wi},
	{ID: FilteredClosestWorldIntersection, Name: "FilteredClosestWorldIntersection", Type: wi},
	{ID: AllWorldIntersections, Name: "AllWorldIntersections", Type: wis},
	{ID: FilteredAllWorldIntersections, Name: "FilteredAllWorldIntersections", Type: wis},
	{ID: ZoneID, Name: "ZoneID", Type: u16},
	{ID: EstimatedClosestWorldIntersection, Name: "EstimatedClosestWorldIntersection", Type: wi},
	{ID: EstimatedAllWorldIntersections, Name: "EstimatedAllWorldIntersections", Type: wis},
	{ID: HeadClosestWorldIntersection, Name: "HeadClosestWorldIntersection", Type: wi},
	{ID: HeadAllWorldIntersections, Name: "HeadAllWorldIntersections", Type: wis},
	{ID: EyelidOpening, Name: "EyelidOpening", Type: f64},
	{ID: EyelidOpeningQ, Name: "EyelidOpeningQ", Type: f64},
	{ID: LeftEyelidOpening, Name: "LeftEyelidOpening", Type: f64},
	{ID: LeftEyelidOpeningQ, Name: "LeftEyelidOpeningQ", Type: f64},
	{ID: RightEyelidOpening, Name: "RightEyelidOpening", Type: f64},
	{ID: RightEyelidOpeningQ, Name: "RightEyelidOpeningQ", Type: f64},
	{ID: KeyboardState, Name: "KeyboardState", Type: str},
	{ID: LeftLowerEyelidExtremePoint, Name: "LeftLowerEyelidExtremePoint", Type: p3},
	{ID: LeftUpperEyelidExtremePoint, Name: "LeftUpperEyelidExtremePoint", Type: p3},
	{ID: RightLowerEyelidExtremePoint, Name: "RightLowerEyelidExtremePoint", Type: p3},
	{ID: RightUpperEyelidExtremePoint, Name: "RightUpperEyelidExtremePoint", Type: p3},
	{ID: PupilDiameter, Name: "PupilDiameter", Type: f64},
	{ID: PupilDiameterQ, Name: "PupilDiameterQ", Type: f64},
	{ID: LeftPupilDiameter, Name: "LeftPupilDiameter", Type: f64},
	{ID: LeftPupilDiameterQ, Name: "LeftPupilDiameterQ", Type: f64},
	{ID: RightPupilDiameter, Name: "RightPupilDiameter", Type: f64},
	{ID: RightPupilDiameterQ, Name: "RightPupilDiameterQ", Type: f64},
	{ID: FilteredPupilDiameter, Name: "FilteredPupilDiameter", Type: f64},
	{ID: FilteredPupilDiameterQ, Name: "FilteredPupilDiameterQ", Type: f64},
	{ID: FilteredLeftPupilDiameter, Name: "FilteredLeftPupilDiameter", Type: f64},
	{ID: FilteredLeftPupilDiameterQ, Name: "FilteredLeftPupilDiameterQ", Type: f64},
	{ID: FilteredRightPupilDiameter, Name: "FilteredRightPupilDiameter", Type: f64},
	{ID: FilteredRightPupilDiameterQ, Name: "FilteredRightPupilDiameterQ", Type: f64},
	{ID: GPSPosition, Name: "GPSPosition", Type: p2},
	{ID: GPSGroundSpeed, Name: "GPSGroundSpeed", Type: f64},
	{ID: GPSCourse, Name: "GPSCourse", Type: f64},
	{ID: GPSTime, Name: "GPSTime", Type: u64},
	{ID: EstimatedGazeOrigin, Name: "EstimatedGazeOrigin", Type: p3},
	{ID: EstimatedLeftGazeOrigin, Name: "EstimatedLeftGazeOrigin", Type: p3},
	{ID: EstimatedRightGazeOrigin, Name: "EstimatedRightGazeOrigin", Type: p3},
	{ID: EstimatedEyePosition, Name: "EstimatedEyePosition", Type: p3},
	{ID: EstimatedGazeDirection, Name: "EstimatedGazeDirection", Type: v3},
	{ID: EstimatedGazeDirectionQ, Name: "EstimatedGazeDirectionQ", Type: f64},
	{ID: EstimatedGazeHeading, Name: "EstimatedGazeHeading", Type: f64},
	{ID: EstimatedGazePitch, Name: "EstimatedGazePitch", Type: f64},
	{ID: EstimatedLeftEyePosition, Name: "EstimatedLeftEyePosition", Type: p3},
	{ID: EstimatedLeftGazeDirection, Name: "EstimatedLeftGazeDirection", Type: v3},
	{ID: EstimatedLeftGazeDirectionQ, Name: "EstimatedLeftGazeDirectionQ", Type: f64},
	{ID: EstimatedLeftGazeHeading, Name: "EstimatedLeftGazeHeading", Type: f64},
	{ID: EstimatedLeftGazePitch, Name: "EstimatedLeftGazePitch", Type: f64},
	{ID: EstimatedRightEyePosition, Name: "EstimatedRightEyePosition", Type: p3},
	{ID: EstimatedRightGazeDirection, Name: "EstimatedRightGazeDirection", Type: v3},
	{ID: EstimatedRightGazeDirectionQ, Name: "EstimatedRightGazeDirectionQ", Type: f64},
	{ID: EstimatedRightGazeHeading, Name: "EstimatedRightGazeHeading", Type: f64},
	{ID: EstimatedRightGazePitch, Name: "EstimatedRightGazePitch", Type: f64},
	{ID: FilteredEstimatedGazeDirection, Name: "FilteredEstimatedGazeDirection", Type: v3},
	{ID: FilteredEstimatedGazeDirectionQ, Name: "FilteredEstimatedGazeDirectionQ", Type: f64},
	{ID: FilteredEstimatedGazeHeading, Name: "FilteredEstimatedGazeHeading", Type: f64},
	{ID: FilteredEstimatedGazePitch, Name: "FilteredEstimatedGazePitch", Type: f64},
	{ID: FilteredEstimatedLeftGazeDirection, Name: "FilteredEstimatedLeftGazeDirection", Type: v3},
	{ID: FilteredEstimatedLeftGazeDirectionQ, Name: "FilteredEstimatedLeftGazeDirectionQ", Type: f64},
	{ID: FilteredEstimatedLeftGazeHeading, Name: "FilteredEstimatedLeftGazeHeading", Type: f64},
	{ID: FilteredEstimatedLeftGazePitch, Name: "FilteredEstimatedLeftGazePitch", Type: f64},
	{ID: FilteredEstimatedRightGazeDirection, Name: "FilteredEstimatedRightGazeDirection", Type: v3},
	{ID: FilteredEstimatedRightGazeDirectionQ, Name: "FilteredEstimatedRightGazeDirectionQ", Type: f64},
	{ID: FilteredEstimatedRightGazeHeading, Name: "FilteredEstimatedRightGazeHeading", Type: f64},
	{ID: FilteredEstimatedRightGazePitch, Name: "FilteredEstimatedRightGazePitch", Type: f64},
	{ID: ASCIIKeyboardState, Name: "ASCIIKeyboardState", Type: u16},
	{ID: CalibrationGazeIntersection, Name: "CalibrationGazeIntersection", Type: wi},
	{ID: TaggedGazeIntersection, Name: "TaggedGazeIntersection", Type: wi},
	{ID: LeftClosestWorldIntersection, Name: "LeftClosestWorldIntersection", Type: wi},
	{ID: LeftAllWorldIntersections, Name: "LeftAllWorldIntersections", Type: wis},
	{ID: RightClosestWorldIntersection, Name: "RightClosestWorldIntersection", Type: wi},
	{ID: RightAllWorldIntersections, Name: "RightAllWorldIntersections", Type: wis},
	{ID: FilteredLeftClosestWorldIntersection, Name: "FilteredLeftClosestWorldIntersection", Type: wi},
	{ID: FilteredLeftAllWorldIntersections, Name: "FilteredLeftAllWorldIntersections", Type: wis},
	{ID: FilteredRightClosestWorldIntersection, Name: "FilteredRightClosestWorldIntersection", Type: wi},
	{ID: FilteredRightAllWorldIntersections, Name: "FilteredRightAllWorldIntersections", Type: wis},
	{ID: EstimatedLeftClosestWorldIntersection, Name: "EstimatedLeftClosestWorldIntersection", Type: wi},
	{ID: EstimatedLeftAllWorldIntersections, Name: "EstimatedLeftAllWorldIntersections", Type: wis},
	{ID: EstimatedRightClosestWorldIntersection, Name: "EstimatedRightClosestWorldIntersection", Type: wi},
	{ID: EstimatedRightAllWorldIntersections, Name: "EstimatedRightAllWorldIntersections", Type: wis},
	{ID: TrackingState, Name: "TrackingState", Reserved: true},
	{ID: EyeglassesStatus, Name: "EyeglassesStatus", Reserved: true},
	{ID: ReflexReductionState, Name: "ReflexReductionState", Reserved: true},
	{ID: LeftBlinkClosingMidTime, Name: "LeftBlinkClosingMidTime", Type: u64},
	{ID: LeftBlinkOpeningMidTime, Name: "LeftBlinkOpeningMidTime", Type: u64},
	{ID: LeftBlinkClosingAmplitude, Name: "LeftBlinkClosingAmplitude", Type: f64},
	{ID: LeftBlinkOpeningAmplitude, Name: "LeftBlinkOpeningAmplitude", Type: f64},
	{ID: LeftBlinkClosingSpeed, Name: "LeftBlinkClosingSpeed", Type: f64},
	{ID: LeftBlinkOpeningSpeed, Name: "LeftBlinkOpeningSpeed", Type: f64},
	{ID: RightBlinkClosingMidTime, Name: "RightBlinkClosingMidTime", Type: u64},
	{ID: RightBlinkOpeningMidTime, Name: "RightBlinkOpeningMidTime", Type: u64},
	{ID: RightBlinkClosingAmplitude, Name: "RightBlinkClosingAmplitude", Type: f64},
	{ID: RightBlinkOpeningAmplitude, Name: "RightBlinkOpeningAmplitude", Type: f64},
	{ID: RightBlinkClosingSpeed, Name: "RightBlinkClosingSpeed", Type: f64},
	{ID: RightBlinkOpeningSpeed, Name: "RightBlinkOpeningSpeed", Type: f64},
	{ID: FilteredEstimatedClosestWorldIntersection, Name: "FilteredEstimatedClosestWorldIntersection", Type: wi},
	{ID: FilteredEstimatedAllWorldIntersections, Name: "FilteredEstimatedAllWorldIntersections", Type: wis},
	{ID: FilteredEstimatedLeftClosestWorldIntersection, Name: "FilteredEstimatedLeftClosestWorldIntersection", Type: wi},
	{ID: FilteredEstimatedLeftAllWorldIntersections, Name: "FilteredEstimatedLeftAllWorldIntersections", Type: wis},
	{ID: FilteredEstimatedRightClosestWorldIntersection, Name: "FilteredEstimatedRightClosestWorldIntersection", Type: wi},
	{ID: FilteredEstimatedRightAllWorldIntersections, Name: "FilteredEstimatedRightAllWorldIntersections", Type: wis},
	{ID: LeftEyelidState, Name: "LeftEyelidState", Type: u8},
	{ID: RightEyelidState, Name: "RightEyelidState", Type: u8},
	{ID: UserMarker, Name: "UserMarker", Type: marker},
	{ID: CameraClocks, Name: "CameraClocks", Type: vec},
}

var byID = func() map[ID]Spec {
	m := make(map[ID]Spec, len(specs))
	for _, s := range specs {
		m[s.ID] = s
	}
	return m
}()

// Lookup returns the decoding rule for id.
func Lookup(id ID) (Spec, bool) {
	s, ok := byID[id]
	return s, ok
}

// Specs returns a copy of the table in id order.
func Specs() []Spec {
	return append([]Spec(nil), specs...)
}
