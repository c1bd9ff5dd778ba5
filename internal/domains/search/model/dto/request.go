package dto

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	catalogModel "tripbook/internal/domains/catalog/model"
	"tripbook/internal/domains/search/model"
	"tripbook/shared"
	"tripbook/shared/constant"
	"tripbook/shared/failure"
	"tripbook/shared/money"
	"tripbook/shared/validator"
)

const (
	ParamFrom           = "from"
	ParamTo             = "to"
	ParamFromName       = "fromName"
	ParamToName         = "toName"
	ParamDeparture      = "departure"
	ParamReturn         = "return"
	ParamTripType       = "tripType"
	ParamAdults         = "adults"
	ParamChildren       = "children"
	ParamInfants        = "infants"
	ParamCabinClass     = "cabinClass"
	ParamCarriers       = "carriers"
	ParamStops          = "stops"
	ParamDepartureTimes = "departureTimes"

	ParamDestination      = "destination"
	ParamDestinationCode  = "destinationCode"
	ParamCheckIn          = "checkIn"
	ParamCheckOut         = "checkOut"
	ParamGuests           = "guests"
	ParamRooms            = "rooms"
	ParamRoomType         = "roomType"
	ParamStars            = "stars"
	ParamAmenities        = "amenities"
	ParamFreeCancellation = "freeCancellation"
	ParamBreakfast        = "breakfast"

	ParamMinPrice = "minPrice"
	ParamMaxPrice = "maxPrice"
	ParamSort     = "sort"

	roomParamFormat = "room%d%s"
)

func intParam(query url.Values, key string, fallback int) (int, error) {
	value := query.Get(key)
	if value == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, failure.BadRequestFromString(fmt.Sprintf("%s must be a whole number", key))
	}

	return parsed, nil
}

func flag(value string) bool {
	parsed := shared.ParseOptionalBool(value)

	return parsed != nil && *parsed
}

func priceRange(query url.Values) (model.PriceRange, error) {
	res := model.AnyPrice()

	low, err := intParam(query, ParamMinPrice, int(res.Min))
	if err != nil {
		return res, err
	}

	high, err := intParam(query, ParamMaxPrice, int(res.Max))
	if err != nil {
		return res, err
	}

	if low > high {
		return res, failure.BadRequestFromString("minPrice must not exceed maxPrice")
	}

	res.Min = money.Money(low)
	res.Max = money.Money(high)

	return res, nil
}

// FlightSearchRequest is the results-page handoff for flights: search parameters plus the
// active filters and sort key.
type FlightSearchRequest struct {
	From           string   `json:"from"           validate:"omitempty,alpha,len=3"`
	To             string   `json:"to"             validate:"omitempty,alpha,len=3"`
	FromName       string   `json:"fromName"`
	ToName         string   `json:"toName"`
	Departure      string   `json:"departure"      validate:"omitempty,day"`
	Return         string   `json:"return"         validate:"omitempty,day"`
	TripType       string   `json:"tripType"       validate:"omitempty,oneof=oneway roundtrip multicity"`
	Adults         int      `json:"adults"         validate:"gte=1,lte=9"`
	Children       int      `json:"children"       validate:"gte=0,lte=8"`
	Infants        int      `json:"infants"        validate:"gte=0,ltefield=Adults"`
	CabinClass     string   `json:"cabinClass"`
	Carriers       []string `json:"carriers"`
	Stops          []string `json:"stops"`
	DepartureTimes []string `json:"departureTimes"`
	Sort           string   `json:"sort"`

	price *model.PriceRange
}

func (r *FlightSearchRequest) FromRequest(request *http.Request) error {
	query := request.URL.Query()

	r.From = query.Get(ParamFrom)
	r.To = query.Get(ParamTo)
	r.FromName = query.Get(ParamFromName)
	r.ToName = query.Get(ParamToName)
	r.Departure = query.Get(ParamDeparture)
	r.Return = query.Get(ParamReturn)
	r.TripType = query.Get(ParamTripType)
	r.CabinClass = query.Get(ParamCabinClass)
	r.Carriers = shared.SplitList(query.Get(ParamCarriers))
	r.Stops = shared.SplitList(query.Get(ParamStops))
	r.DepartureTimes = shared.SplitList(query.Get(ParamDepartureTimes))
	r.Sort = query.Get(ParamSort)

	var err error

	if r.Adults, err = intParam(query, ParamAdults, 1); err != nil {
		return err
	}

	if r.Children, err = intParam(query, ParamChildren, 0); err != nil {
		return err
	}

	if r.Infants, err = intParam(query, ParamInfants, 0); err != nil {
		return err
	}

	price, err := priceRange(query)
	if err != nil {
		return err
	}

	r.price = &price

	if r.Passengers() > constant.MaxPassengers {
		return failure.BadRequestFromString(fmt.Sprintf("at most %d passengers can travel on one booking", constant.MaxPassengers))
	}

	return validator.ValidateStruct(r)
}

func (r FlightSearchRequest) Passengers() int {
	return r.Adults + r.Children + r.Infants
}

func (r FlightSearchRequest) Tier() (catalogModel.Tier, error) {
	return catalogModel.ParseCabinTier(r.CabinClass)
}

func (r FlightSearchRequest) SortKey() (model.SortKey, error) {
	return model.ParseSortKey(r.Sort, model.FlightSortKeys)
}

func (r FlightSearchRequest) Criteria() (model.Criteria, error) {
	criteria := model.NewCriteria()
	if r.price != nil {
		criteria.Price = *r.price
	}

	criteria.Carriers = r.Carriers

	var err error

	if criteria.Stops, err = model.ParseStopBuckets(r.Stops); err != nil {
		return criteria, err
	}

	if criteria.DepartureTimes, err = model.ParseTimesOfDay(r.DepartureTimes); err != nil {
		return criteria, err
	}

	return criteria, nil
}

// Query echoes the search parameters so the client can forward them to detail and booking.
func (r FlightSearchRequest) Query() map[string]string {
	return compact(map[string]string{
		ParamFrom:       r.From,
		ParamTo:         r.To,
		ParamFromName:   r.FromName,
		ParamToName:     r.ToName,
		ParamDeparture:  r.Departure,
		ParamReturn:     r.Return,
		ParamTripType:   r.TripType,
		ParamAdults:     strconv.Itoa(r.Adults),
		ParamChildren:   strconv.Itoa(r.Children),
		ParamInfants:    strconv.Itoa(r.Infants),
		ParamCabinClass: r.CabinClass,
	})
}

type RoomQuery struct {
	Adults   int `json:"adults"   validate:"gte=1,lte=4"`
	Children int `json:"children" validate:"gte=0,lte=3"`
	Infants  int `json:"infants"  validate:"gte=0,lte=2"`
}

// HotelSearchRequest is the results-page handoff for hotels. Rooms are read from
// room{N}Adults, room{N}Children and room{N}Infants for N in 1..rooms.
type HotelSearchRequest struct {
	Destination      string      `json:"destination"`
	DestinationCode  string      `json:"destinationCode"`
	CheckIn          string      `json:"checkIn"          validate:"omitempty,day"`
	CheckOut         string      `json:"checkOut"         validate:"omitempty,day"`
	Guests           int         `json:"guests"           validate:"gte=0"`
	Rooms            []RoomQuery `json:"rooms"            validate:"min=1,max=4,dive"`
	RoomType         string      `json:"roomType"`
	Stars            []int       `json:"stars"            validate:"dive,gte=1,lte=5"`
	Amenities        []string    `json:"amenities"`
	FreeCancellation bool        `json:"freeCancellation"`
	Breakfast        bool        `json:"breakfast"`
	Sort             string      `json:"sort"`

	price *model.PriceRange
}

func (r *HotelSearchRequest) FromRequest(request *http.Request) error {
	query := request.URL.Query()

	r.Destination = query.Get(ParamDestination)
	r.DestinationCode = query.Get(ParamDestinationCode)
	r.CheckIn = query.Get(ParamCheckIn)
	r.CheckOut = query.Get(ParamCheckOut)
	r.RoomType = query.Get(ParamRoomType)
	r.Amenities = shared.SplitList(query.Get(ParamAmenities))
	r.FreeCancellation = flag(query.Get(ParamFreeCancellation))
	r.Breakfast = flag(query.Get(ParamBreakfast))
	r.Sort = query.Get(ParamSort)

	var err error

	if r.Guests, err = intParam(query, ParamGuests, 0); err != nil {
		return err
	}

	rooms, err := intParam(query, ParamRooms, 1)
	if err != nil {
		return err
	}

	if rooms < 1 || rooms > constant.MaxRooms {
		return failure.BadRequestFromString(fmt.Sprintf("rooms must be between 1 and %d", constant.MaxRooms))
	}

	r.Rooms = make([]RoomQuery, rooms)
	for i := range r.Rooms {
		if r.Rooms[i], err = roomQuery(query, i+1); err != nil {
			return err
		}
	}

	for _, star := range shared.SplitList(query.Get(ParamStars)) {
		value, convErr := strconv.Atoi(star)
		if convErr != nil {
			return failure.BadRequestFromString("stars must be whole numbers")
		}

		r.Stars = append(r.Stars, value)
	}

	price, err := priceRange(query)
	if err != nil {
		return err
	}

	r.price = &price

	if r.CheckIn != "" && r.CheckOut != "" && r.CheckOut <= r.CheckIn {
		return failure.BadRequestFromString("checkOut must be after checkIn")
	}

	return validator.ValidateStruct(r)
}

func roomQuery(query url.Values, n int) (RoomQuery, error) {
	var (
		room RoomQuery
		err  error
	)

	if room.Adults, err = intParam(query, fmt.Sprintf(roomParamFormat, n, "Adults"), 1); err != nil {
		return room, err
	}

	if room.Children, err = intParam(query, fmt.Sprintf(roomParamFormat, n, "Children"), 0); err != nil {
		return room, err
	}

	if room.Infants, err = intParam(query, fmt.Sprintf(roomParamFormat, n, "Infants"), 0); err != nil {
		return room, err
	}

	return room, nil
}

func (r HotelSearchRequest) Tier() (catalogModel.Tier, error) {
	return catalogModel.ParseRoomTier(r.RoomType)
}

func (r HotelSearchRequest) SortKey() (model.SortKey, error) {
	return model.ParseSortKey(r.Sort, model.HotelSortKeys)
}

func (r HotelSearchRequest) Criteria() model.Criteria {
	criteria := model.NewCriteria()
	if r.price != nil {
		criteria.Price = *r.price
	}

	criteria.Stars = r.Stars
	criteria.Amenities = r.Amenities
	criteria.FreeCancellationOnly = r.FreeCancellation
	criteria.BreakfastOnly = r.Breakfast

	return criteria
}

func (r HotelSearchRequest) Query() map[string]string {
	query := map[string]string{
		ParamDestination:     r.Destination,
		ParamDestinationCode: r.DestinationCode,
		ParamCheckIn:         r.CheckIn,
		ParamCheckOut:        r.CheckOut,
		ParamGuests:          strconv.Itoa(r.Guests),
		ParamRooms:           strconv.Itoa(len(r.Rooms)),
		ParamRoomType:        r.RoomType,
	}

	for i, room := range r.Rooms {
		query[fmt.Sprintf(roomParamFormat, i+1, "Adults")] = strconv.Itoa(room.Adults)
		query[fmt.Sprintf(roomParamFormat, i+1, "Children")] = strconv.Itoa(room.Children)
		query[fmt.Sprintf(roomParamFormat, i+1, "Infants")] = strconv.Itoa(room.Infants)
	}

	return compact(query)
}

func compact(query map[string]string) map[string]string {
	for key, value := range query {
		if value == "" {
			delete(query, key)
		}
	}

	return query
}
