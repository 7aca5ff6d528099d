// Package rest turns HTTP responses from the platform API into errors of the
// taxonomy.
//
// It does not send requests on behalf of the caller except for gateway
// discovery. Callers perform their own requests and hand the response to
// CheckResponse:
//
//	resp, err := client.Do(req)
//	if err != nil {
//	    return err
//	}
//	defer resp.Body.Close()
//
//	if err := rest.CheckResponse(resp); err != nil {
//	    if errors.Is(err, errors.KindNotFound) {
//	        // the resource is gone
//	    }
//	    return err
//	}
//
// Error bodies with a JSON content type are decoded as platform error
// payloads, with nested field errors flattened into the message. Any other
// body is used as plain text.
package rest
