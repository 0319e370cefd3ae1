package contact

// contactView is the wire shape of one card. The short field names are the
// contract the frontend consumes; they map onto the longer storage columns.
type contactView struct {
	ID      int    `json:"id" doc:"Card id"`
	Name    string `json:"name" doc:"Display name"`
	Company string `json:"company" doc:"Affiliation"`
	Desc    string `json:"desc" doc:"Free-text notes"`
	Img     string `json:"img" doc:"Image reference"`
}

type listOutput struct {
	Body []contactView
}

// createOutput carries the new row id as a plain string body.
type createOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

type updateInput struct {
	Body updateRequest
}

// updateRequest is a full-replace payload: id is required, every content
// field absent from the request lands here as its empty value and overwrites
// the stored one.
type updateRequest struct {
	ID      int    `json:"id" doc:"Card id to update"`
	Name    string `json:"name,omitempty" doc:"Display name"`
	Company string `json:"company,omitempty" doc:"Affiliation"`
	Desc    string `json:"desc,omitempty" doc:"Free-text notes"`
	Img     string `json:"img,omitempty" doc:"Image reference"`
}

type updateOutput struct{}

type deleteInput struct {
	ID int `query:"id" required:"true" doc:"Card id to delete"`
}

type deleteOutput struct{}
