package capacity

import "errors"

var (
	// ErrOverbooked в слоте уже столько визитов, сколько вмещает зал, или окно пересекается с визитом, начатым в другое время
	ErrOverbooked = errors.New("capacity: hall is fully booked for the selected time")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("capacity: internal error")
)
