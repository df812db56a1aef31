package workspace

// Newsletter is the page-property view of a newsletter document. The
// body lives in the page's block children and is fetched separately.
type Newsletter struct {
	ID              string
	Title           string
	IssueDate       string
	Status          string
	Highlights      string
	PrimaryCustomer string
	Collateral      string
	Audience        []string
}

// Contact is one resolvable recipient from the contacts collection.
type Contact struct {
	Email     string
	FirstName string
	Tags      []string
}

// Property names on newsletter pages and contact rows. The workspace
// schema is managed by hand, so these are conventions, not guarantees.
const (
	propTitle           = "Name"
	propIssueDate       = "Issue Date"
	propStatus          = "Status"
	propAudience        = "Audience"
	propHighlights      = "Highlights"
	propPrimaryCustomer = "Primary Customer"
	propCollateral      = "Collateral"
	propEmail           = "Email"
	propFirstName       = "First Name"
)

// richText is the wire shape of one annotated text fragment.
type richText struct {
	Type string `json:"type"`
	Text struct {
		Content string `json:"content"`
		Link    *struct {
			URL string `json:"url"`
		} `json:"link,omitempty"`
	} `json:"text"`
	Annotations struct {
		Bold      bool `json:"bold,omitempty"`
		Italic    bool `json:"italic,omitempty"`
		Underline bool `json:"underline,omitempty"`
		Code      bool `json:"code,omitempty"`
	} `json:"annotations"`
	PlainText string `json:"plain_text,omitempty"`
}

// property is the wire shape of a page property; only the member
// matching Type is populated.
type property struct {
	Type     string     `json:"type"`
	Title    []richText `json:"title,omitempty"`
	RichText []richText `json:"rich_text,omitempty"`
	Email    string     `json:"email,omitempty"`
	Select   *struct {
		Name string `json:"name"`
	} `json:"select,omitempty"`
	Status *struct {
		Name string `json:"name"`
	} `json:"status,omitempty"`
	MultiSelect []struct {
		Name string `json:"name"`
	} `json:"multi_select,omitempty"`
	Date *struct {
		Start string `json:"start"`
	} `json:"date,omitempty"`
}

type page struct {
	ID         string              `json:"id"`
	Properties map[string]property `json:"properties"`
}

// textPayload is the wire shape shared by text-bearing block types.
type textPayload struct {
	RichText []richText `json:"rich_text"`
}

type urlRef struct {
	URL string `json:"url"`
}

// filePayload is the wire shape of image and video blocks; the source
// URL lives under either external or file depending on hosting.
type filePayload struct {
	Type     string     `json:"type,omitempty"`
	External *urlRef    `json:"external,omitempty"`
	File     *urlRef    `json:"file,omitempty"`
	Caption  []richText `json:"caption,omitempty"`
}

// apiBlock is the wire shape of one block child.
type apiBlock struct {
	Object   string       `json:"object,omitempty"`
	ID       string       `json:"id,omitempty"`
	Type     string       `json:"type"`
	Heading1 *textPayload `json:"heading_1,omitempty"`
	Heading2 *textPayload `json:"heading_2,omitempty"`
	Heading3 *textPayload `json:"heading_3,omitempty"`
	Para     *textPayload `json:"paragraph,omitempty"`
	Bullet   *textPayload `json:"bulleted_list_item,omitempty"`
	Numbered *textPayload `json:"numbered_list_item,omitempty"`
	Quote    *textPayload `json:"quote,omitempty"`
	Callout  *textPayload `json:"callout,omitempty"`
	Divider  *struct{}    `json:"divider,omitempty"`
	Image    *filePayload `json:"image,omitempty"`
	Video    *filePayload `json:"video,omitempty"`
	Embed    *urlRef      `json:"embed,omitempty"`
}

// listResponse is the wire shape of paginated list endpoints.
type listResponse[T any] struct {
	Results    []T    `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor"`
}
