package util

type Point struct {
	X int32
	Y int32
}
