package domain

//region InvalidArgumentsError

type InvalidArgumentsError struct {
	Msg string
}

func (e *InvalidArgumentsError) Error() string {
	return e.Msg
}

func (e *InvalidArgumentsError) Is(target error) bool {
	_, ok := target.(*InvalidArgumentsError)
	return ok
}

//endregion

//region AccountNotFoundError

type AccountNotFoundError struct {
	Msg string
}

func (e *AccountNotFoundError) Error() string {
	return e.Msg
}

func (e *AccountNotFoundError) Is(target error) bool {
	_, ok := target.(*AccountNotFoundError)
	return ok
}

//endregion

//region ItemNotFoundError

type ItemNotFoundError struct {
	Msg string
}

func (e *ItemNotFoundError) Error() string {
	return e.Msg
}

func (e *ItemNotFoundError) Is(target error) bool {
	_, ok := target.(*ItemNotFoundError)
	return ok
}

//endregion

//region InsufficientCreditsError

type InsufficientCreditsError struct {
	Msg string
}

func (e *InsufficientCreditsError) Error() string {
	return e.Msg
}

func (e *InsufficientCreditsError) Is(target error) bool {
	_, ok := target.(*InsufficientCreditsError)
	return ok
}

//endregion

//region OutOfStockError

type OutOfStockError struct {
	Msg string
}

func (e *OutOfStockError) Error() string {
	return e.Msg
}

func (e *OutOfStockError) Is(target error) bool {
	_, ok := target.(*OutOfStockError)
	return ok
}

//endregion

//region InvalidOrUsedCodeError

type InvalidOrUsedCodeError struct {
	Msg string
}

func (e *InvalidOrUsedCodeError) Error() string {
	return e.Msg
}

func (e *InvalidOrUsedCodeError) Is(target error) bool {
	_, ok := target.(*InvalidOrUsedCodeError)
	return ok
}

//endregion

//region TransactionConflictError

// TransactionConflictError signals a lock timeout or serialization failure.
// No partial effect occurred, so the whole operation is safe to retry.
type TransactionConflictError struct {
	Msg string
}

func (e *TransactionConflictError) Error() string {
	return e.Msg
}

func (e *TransactionConflictError) Is(target error) bool {
	_, ok := target.(*TransactionConflictError)
	return ok
}

//endregion
