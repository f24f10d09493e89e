package verr

import "github.com/leapdao/parent-bridge/txview"

// FromAccessor maps a txview accessor error to its exit code (1-4). Any
// error that isn't one of the four recognized accessor errors is returned
// unchanged so a caller's own verr.Error still reaches os.Exit verbatim.
func FromAccessor(err error) error {
	switch err {
	case nil:
		return nil
	case txview.ErrIndexOutOfBound:
		return New(IndexOutOfBound)
	case txview.ErrItemMissing:
		return New(ItemMissing)
	case txview.ErrLengthNotEnough:
		return New(LengthNotEnough)
	case txview.ErrEncoding:
		return New(Encoding)
	default:
		return err
	}
}
