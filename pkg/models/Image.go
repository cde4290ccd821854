package models

/*
Image describes one displayable image. SrcSet and Sizes are derived by
the builders in pkg/images and should never be hand-assembled. Width
and Height are present together only for large (hero/closing) images.
*/
type Image struct {
	Src    string `json:"src"`
	SrcSet string `json:"srcSet,omitempty"`
	Alt    string `json:"alt"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Sizes  string `json:"sizes,omitempty"`
}
