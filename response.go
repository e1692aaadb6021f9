package networking

// defaultFailures maps a status class to the error kind used when the handler
// table has no entry for it. StatusSuccess is absent: its default is to
// decode the body.
var defaultFailures = map[StatusClass]ErrorKind{
	StatusInfo:        KindUnknown,
	StatusRedirect:    KindUnknown,
	StatusClientError: KindBadRequest,
	StatusServerError: KindServerError,
}

// failKinds maps a status class to the error kind used when the caller
// configured ActionFail for it. Classes with no associated kind fail with
// KindUnknown.
var failKinds = map[StatusClass]ErrorKind{
	StatusInfo:        KindUnknown,
	StatusSuccess:     KindUnknown,
	StatusRedirect:    KindUnknown,
	StatusClientError: KindDecoding,
	StatusServerError: KindServerError,
}

// handleResponse classifies the status code, consults the handler table, and
// either decodes the body into T or fails with a *RequestError. It always
// returns exactly one of the two; decode failures are never swallowed.
func handleResponse[T any](body []byte, statusCode int, dec Decoder, handlers StatusHandlers) (T, error) {
	var zero T

	class := ClassifyStatus(statusCode)
	if class == StatusUnknown {
		// Unclassifiable codes fail regardless of the handler table.
		return zero, &RequestError{Kind: KindUnknown}
	}

	action, ok := handlers[class]
	if !ok {
		if class == StatusSuccess {
			return decodeBody[T](body, dec)
		}
		return zero, &RequestError{Kind: defaultFailures[class]}
	}

	if action == ActionDecode {
		return decodeBody[T](body, dec)
	}
	return zero, &RequestError{Kind: failKinds[class]}
}

// decodeBody decodes body into a fresh T with dec, falling back to the
// package default decoder.
func decodeBody[T any](body []byte, dec Decoder) (T, error) {
	var out T
	if dec == nil {
		dec = defaultDecoder
	}
	if err := dec.Decode(body, &out); err != nil {
		var zero T
		return zero, &RequestError{Kind: KindDecoding, Cause: err}
	}
	return out, nil
}
