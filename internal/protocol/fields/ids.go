package fields

import "fmt"

// ID is a sub-packet field identifier.
type ID uint16

// Field identifiers in id order.
const (
	FrameNumber                                    ID = 0x0001
	EstimatedDelay                                 ID = 0x0002
	TimeStamp                                      ID = 0x0003
	UserTimeStamp                                  ID = 0x0004
	FrameRate                                      ID = 0x0005
	CameraPositions                                ID = 0x0006
	CameraRotations                                ID = 0x0007
	UserDefinedData                                ID = 0x0008
	RealTimeClock                                  ID = 0x0009
	HeadPosition                                   ID = 0x0010
	HeadPositionQ                                  ID = 0x0011
	HeadRotationRodrigues                          ID = 0x0012
	HeadNoseDirection                              ID = 0x0013
	HeadUpDirection                                ID = 0x0014
	HeadLeftEarDirection                           ID = 0x0015
	HeadHeading                                    ID = 0x0016
	HeadPitch                                      ID = 0x0017
	HeadRoll                                       ID = 0x0018
	HeadRotationQ                                  ID = 0x0019
	GazeOrigin                                     ID = 0x001a
	LeftGazeOrigin                                 ID = 0x001b
	RightGazeOrigin                                ID = 0x001c
	HeadRotationQuaternion                         ID = 0x001d
	EyePosition                                    ID = 0x0020
	GazeDirection                                  ID = 0x0021
	GazeDirectionQ                                 ID = 0x0022
	LeftEyePosition                                ID = 0x0023
	LeftGazeDirection                              ID = 0x0024
	LeftGazeDirectionQ                             ID = 0x0025
	RightEyePosition                               ID = 0x0026
	RightGazeDirection                             ID = 0x0027
	RightGazeDirectionQ                            ID = 0x0028
	GazeHeading                                    ID = 0x0029
	GazePitch                                      ID = 0x002a
	LeftGazeHeading                                ID = 0x002b
	LeftGazePitch                                  ID = 0x002c
	RightGazeHeading                               ID = 0x002d
	RightGazePitch                                 ID = 0x002e
	FilteredGazeDirection                          ID = 0x0030
	FilteredGazeDirectionQ                         ID = 0x0031
	FilteredLeftGazeDirection                      ID = 0x0032
	FilteredLeftGazeDirectionQ                     ID = 0x0033
	FilteredRightGazeDirection                     ID = 0x0034
	FilteredRightGazeDirectionQ                    ID = 0x0035
	FilteredGazeHeading                            ID = 0x0036
	FilteredGazePitch                              ID = 0x0037
	FilteredLeftGazeHeading                        ID = 0x0038
	FilteredLeftGazePitch                          ID = 0x0039
	FilteredRightGazeHeading                       ID = 0x003a
	FilteredRightGazePitch                         ID = 0x003b
	Saccade                                        ID = 0x003d
	Fixation                                       ID = 0x003e
	Blink                                          ID = 0x003f
	ClosestWorldIntersection                       ID = 0x0040
	FilteredClosestWorldIntersection               ID = 0x0041
	AllWorldIntersections                          ID = 0x0042
	FilteredAllWorldIntersections                  ID = 0x0043
	ZoneID                                         ID = 0x0044
	EstimatedClosestWorldIntersection              ID = 0x0045
	EstimatedAllWorldIntersections                 ID = 0x0046
	HeadClosestWorldIntersection                   ID = 0x0049
	HeadAllWorldIntersections                      ID = 0x004a
	EyelidOpening                                  ID = 0x0050
	EyelidOpeningQ                                 ID = 0x0051
	LeftEyelidOpening                              ID = 0x0052
	LeftEyelidOpeningQ                             ID = 0x0053
	RightEyelidOpening                             ID = 0x0054
	RightEyelidOpeningQ                            ID = 0x0055
	KeyboardState                                  ID = 0x0056
	LeftLowerEyelidExtremePoint                    ID = 0x0058
	LeftUpperEyelidExtremePoint                    ID = 0x0059
	RightLowerEyelidExtremePoint                   ID = 0x005a
	RightUpperEyelidExtremePoint                   ID = 0x005b
	PupilDiameter                                  ID = 0x0060
	PupilDiameterQ                                 ID = 0x0061
	LeftPupilDiameter                              ID = 0x0062
	LeftPupilDiameterQ                             ID = 0x0063
	RightPupilDiameter                             ID = 0x0064
	RightPupilDiameterQ                            ID = 0x0065
	FilteredPupilDiameter                          ID = 0x0066
	FilteredPupilDiameterQ                         ID = 0x0067
	FilteredLeftPupilDiameter                      ID = 0x0068
	FilteredLeftPupilDiameterQ                     ID = 0x0069
	FilteredRightPupilDiameter                     ID = 0x006a
	FilteredRightPupilDiameterQ                    ID = 0x006b
	GPSPosition                                    ID = 0x0070
	GPSGroundSpeed                                 ID = 0x0071
	GPSCourse                                      ID = 0x0072
	GPSTime                                        ID = 0x0073
	EstimatedGazeOrigin                            ID = 0x007a
	EstimatedLeftGazeOrigin                        ID = 0x007b
	EstimatedRightGazeOrigin                       ID = 0x007c
	EstimatedEyePosition                           ID = 0x0080
	EstimatedGazeDirection                         ID = 0x0081
	EstimatedGazeDirectionQ                        ID = 0x0082
	EstimatedGazeHeading                           ID = 0x0083
	EstimatedGazePitch                             ID = 0x0084
	EstimatedLeftEyePosition                       ID = 0x0085
	EstimatedLeftGazeDirection                     ID = 0x0086
	EstimatedLeftGazeDirectionQ                    ID = 0x0087
	EstimatedLeftGazeHeading                       ID = 0x0088
	EstimatedLeftGazePitch                         ID = 0x0089
	EstimatedRightEyePosition                      ID = 0x008a
	EstimatedRightGazeDirection                    ID = 0x008b
	EstimatedRightGazeDirectionQ                   ID = 0x008c
	EstimatedRightGazeHeading                      ID = 0x008d
	EstimatedRightGazePitch                        ID = 0x008e
	FilteredEstimatedGazeDirection                 ID = 0x0091
	FilteredEstimatedGazeDirectionQ                ID = 0x0092
	FilteredEstimatedGazeHeading                   ID = 0x0093
	FilteredEstimatedGazePitch                     ID = 0x0094
	FilteredEstimatedLeftGazeDirection             ID = 0x0096
	FilteredEstimatedLeftGazeDirectionQ            ID = 0x0097
	FilteredEstimatedLeftGazeHeading               ID = 0x0098
	FilteredEstimatedLeftGazePitch                 ID = 0x0099
	FilteredEstimatedRightGazeDirection            ID = 0x009b
	FilteredEstimatedRightGazeDirectionQ           ID = 0x009c
	FilteredEstimatedRightGazeHeading              ID = 0x009d
	FilteredEstimatedRightGazePitch                ID = 0x009e
	ASCIIKeyboardState                             ID = 0x00a4
	CalibrationGazeIntersection                    ID = 0x00b0
	TaggedGazeIntersection                         ID = 0x00b1
	LeftClosestWorldIntersection                   ID = 0x00b2
	LeftAllWorldIntersections                      ID = 0x00b3
	RightClosestWorldIntersection                  ID = 0x00b4
	RightAllWorldIntersections                     ID = 0x00b5
	FilteredLeftClosestWorldIntersection           ID = 0x00b6
	FilteredLeftAllWorldIntersections              ID = 0x00b7
	FilteredRightClosestWorldIntersection          ID = 0x00b8
	FilteredRightAllWorldIntersections             ID = 0x00b9
	EstimatedLeftClosestWorldIntersection          ID = 0x00ba
	EstimatedLeftAllWorldIntersections             ID = 0x00bb
	EstimatedRightClosestWorldIntersection         ID = 0x00bc
	EstimatedRightAllWorldIntersections            ID = 0x00bd
	TrackingState                                  ID = 0x00c0
	EyeglassesStatus                               ID = 0x00c1
	ReflexReductionState                           ID = 0x00c2
	LeftBlinkClosingMidTime                        ID = 0x00e0
	LeftBlinkOpeningMidTime                        ID = 0x00e1
	LeftBlinkClosingAmplitude                      ID = 0x00e2
	LeftBlinkOpeningAmplitude                      ID = 0x00e3
	LeftBlinkClosingSpeed                          ID = 0x00e4
	LeftBlinkOpeningSpeed                          ID = 0x00e5
	RightBlinkClosingMidTime                       ID = 0x00e6
	RightBlinkOpeningMidTime                       ID = 0x00e7
	RightBlinkClosingAmplitude                     ID = 0x00e8
	RightBlinkOpeningAmplitude                     ID = 0x00e9
	RightBlinkClosingSpeed                         ID = 0x00ea
	RightBlinkOpeningSpeed                         ID = 0x00eb
	FilteredEstimatedClosestWorldIntersection      ID = 0x0141
	FilteredEstimatedAllWorldIntersections         ID = 0x0142
	FilteredEstimatedLeftClosestWorldIntersection  ID = 0x0143
	FilteredEstimatedLeftAllWorldIntersections     ID = 0x0144
	FilteredEstimatedRightClosestWorldIntersection ID = 0x0145
	FilteredEstimatedRightAllWorldIntersections    ID = 0x0146
	LeftEyelidState                                ID = 0x0390
	RightEyelidState                               ID = 0x0391
	UserMarker                                     ID = 0x03a0
	CameraClocks                                   ID = 0x03a1
)

func (id ID) String() string {
	if s, ok := Lookup(id); ok {
		return s.Name
	}
	return fmt.Sprintf("Field(0x%04x)", uint16(id))
}
