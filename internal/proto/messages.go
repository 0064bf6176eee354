package proto

import "time"

type Beer struct {
	Id        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (x *Beer) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Beer) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Beer) GetCreatedAt() time.Time {
	if x != nil {
		return x.CreatedAt
	}
	return time.Time{}
}

type CreateBeerRequest struct {
	Name string `json:"name"`
}

func (x *CreateBeerRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type GetBeersRequest struct{}

type GetBeersResponse struct {
	Beers []*Beer `json:"beers"`
}

func (x *GetBeersResponse) GetBeers() []*Beer {
	if x != nil {
		return x.Beers
	}
	return nil
}

type GetBeerCountRequest struct{}

type BeerCount struct {
	Count int64 `json:"count"`
}

func (x *BeerCount) GetCount() int64 {
	if x != nil {
		return x.Count
	}
	return 0
}

type PingRequest struct{}

type PingResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func (x *PingResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}
