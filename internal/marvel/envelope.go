package marvel

// Envelope — обёртка ответа апстрима. Содержимое считается непрозрачным:
// шлюз не проверяет инварианты вроде count <= total, это зона апстрима.
type Envelope[T any] struct {
	Code            int     `json:"code"`
	Status          string  `json:"status"`
	Copyright       string  `json:"copyright"`
	AttributionText string  `json:"attributionText"`
	AttributionHTML string  `json:"attributionHTML"`
	Etag            string  `json:"etag"`
	Data            Page[T] `json:"data"`
}

// Page — контейнер пагинации внутри Envelope.
type Page[T any] struct {
	Offset  int `json:"offset"`
	Limit   int `json:"limit"`
	Total   int `json:"total"`
	Count   int `json:"count"`
	Results []T `json:"results"`
}

// Character — персонаж каталога.
type Character struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Modified    string `json:"modified"`
	ResourceURI string `json:"resourceURI"`
	Thumbnail   *Image `json:"thumbnail"`
	URLs        []URL  `json:"urls"`
}

// Comic — комикс каталога.
type Comic struct {
	ID          int     `json:"id"`
	DigitalID   int     `json:"digitalId"`
	Title       string  `json:"title"`
	IssueNumber float64 `json:"issueNumber"`
	Description string  `json:"description"`
	Modified    string  `json:"modified"`
	ISBN        string  `json:"isbn"`
	UPC         string  `json:"upc"`
	DiamondCode string  `json:"diamondCode"`
	Format      string  `json:"format"`
	PageCount   int     `json:"pageCount"`
	ResourceURI string  `json:"resourceURI"`
	Dates       []Date  `json:"dates"`
	Prices      []Price `json:"prices"`
	Thumbnail   *Image  `json:"thumbnail"`
	Images      []Image `json:"images"`
	URLs        []URL   `json:"urls"`
}

// Image — картинка каталога; полный адрес собирается из path и extension.
type Image struct {
	Path      string `json:"path"`
	Extension string `json:"extension"`
}

// FullURL возвращает полный адрес картинки.
func (i Image) FullURL() string {
	return i.Path + "." + i.Extension
}

// URL — внешняя ссылка каталога.
type URL struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// Date — датированное событие комикса (onsaleDate, focDate и т.п.).
type Date struct {
	Type string `json:"type"`
	Date string `json:"date"`
}

// Price — цена комикса в конкретном формате.
type Price struct {
	Type  string  `json:"type"`
	Price float64 `json:"price"`
}
