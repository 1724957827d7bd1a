/*
Package residentsdk provides a typed client for the Common Hall community
service, plus the request/response types the service itself serves.

# Overview

The community service is a resource server: callers authenticate with a Bearer
access token minted by the external identity provider, and every operation is
implicitly scoped to the caller. The SDK therefore has no login or refresh
machinery of its own; you hand it a token and it sends it.

	client := residentsdk.NewClient("https://community.example.com", accessToken)

	// Directory
	buildings, err := client.ListBuildings(ctx)
	building, err := client.CreateBuilding(ctx, residentsdk.CreateBuildingRequest{
		Name:    "Maple Court",
		Address: "1 Maple St",
	})

	// Residency verification
	vr, err := client.SubmitVerificationRequest(ctx, residentsdk.SubmitVerificationRequest{
		BuildingID:  building.ID,
		Floor:       "5F",
		DocumentURL: "https://storage.example.com/docs/abc",
	})
	status, err := client.GetVerificationStatus(ctx)

	// Boards (require a verified residency)
	post, err := client.CreatePost(ctx, residentsdk.CreatePostRequest{
		BoardType: "free",
		Title:     "Hello neighbours",
		Content:   "Anyone up for coffee?",
	})
	liked, err := client.ToggleLike(ctx, post.ID)

# Error Handling

Non-2xx responses decode into *APIError carrying the service's stable error
code ("not_verified", "wrong_building", "conflict", ...) so callers can branch
without parsing free text:

	_, err := client.CreatePost(ctx, req)
	var apiErr *residentsdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == residentsdk.ErrorCodeNotVerified {
		// prompt the user to verify their residency first
	}
*/
package residentsdk
